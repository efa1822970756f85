//go:build stm32f103

package main

import (
	"device/arm"
	"device/stm32"
	"machine"
	"runtime/interrupt"

	"swoblink/core"
)

// stmRuntime drives the millisecond tick from TIM2 and halts on a
// breakpoint trap. TinyGo keeps its own timers for sleep; TIM2 is free.
type stmRuntime struct{}

// Init starts TIM2 with a 1 kHz update interrupt
func (r *stmRuntime) Init() error {
	stm32.RCC.APB1ENR.SetBits(stm32.RCC_APB1ENR_TIM2EN)

	// APB1 timers run at twice PCLK1, which is HCLK/2: the timer clock is
	// the core clock. Count at 10 kHz and overflow every 10 counts.
	stm32.TIM2.PSC.Set(machine.CPUFrequency()/10000 - 1)
	stm32.TIM2.ARR.Set(10 - 1)
	stm32.TIM2.EGR.SetBits(stm32.TIM_EGR_UG)
	stm32.TIM2.SR.ClearBits(stm32.TIM_SR_UIF)
	stm32.TIM2.DIER.SetBits(stm32.TIM_DIER_UIE)

	intr := interrupt.New(stm32.IRQ_TIM2, handleTIM2)
	intr.SetPriority(0xc0)
	intr.Enable()

	stm32.TIM2.CR1.SetBits(stm32.TIM_CR1_CEN)
	return nil
}

func handleTIM2(interrupt.Interrupt) {
	if stm32.TIM2.SR.HasBits(stm32.TIM_SR_UIF) {
		stm32.TIM2.SR.ClearBits(stm32.TIM_SR_UIF)
		core.Tick()
	}
}

// Halt traps into an attached debugger and then spins forever
func (r *stmRuntime) Halt(err error) {
	arm.Asm("bkpt #0")
	for {
	}
}
