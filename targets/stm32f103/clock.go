//go:build stm32f103

package main

import (
	"device/stm32"
	"errors"
	"runtime/volatile"
)

/*
clock settings
+-------------+--------+
| HSE         | 8mhz   |
| SYSCLK      | 72mhz  |  HSE * PLL 9
| HCLK        | 72mhz  |  AHB /1
| APB1(PCLK1) | 36mhz  |  /2
| APB2(PCLK2) | 36mhz  |  /2
| SysTick     | 9mhz   |  HCLK/8
+-------------+--------+
*/
const (
	hseHz    = 8000000
	pllMul   = 9
	targetHz = hseHz * pllMul

	// Polls before giving up on a ready flag
	readyTimeout = 0x5000
)

var (
	errHSEStartup  = errors.New("HSE did not start")
	errPLLLock     = errors.New("PLL did not lock")
	errClockSwitch = errors.New("SYSCLK did not switch to PLL")
)

// rccClock brings up HSE -> PLL -> SYSCLK
type rccClock struct{}

func (c *rccClock) Configure() error {
	if c.onPLL() {
		// The runtime may already have run the same sequence before main
		c.disableUnused()
		return nil
	}

	// HSE on, no bypass
	stm32.RCC.CR.ClearBits(stm32.RCC_CR_HSEBYP)
	stm32.RCC.CR.SetBits(stm32.RCC_CR_HSEON)
	if !waitBits(&stm32.RCC.CR, stm32.RCC_CR_HSERDY) {
		return errHSEStartup
	}

	// Two flash wait states above 48 MHz
	stm32.FLASH.ACR.ReplaceBits(stm32.FLASH_ACR_LATENCY_WS2, stm32.FLASH_ACR_LATENCY_Msk>>stm32.FLASH_ACR_LATENCY_Pos, stm32.FLASH_ACR_LATENCY_Pos)
	stm32.FLASH.ACR.SetBits(stm32.FLASH_ACR_PRFTBE)

	// AHB /1, APB1 /2, APB2 /2
	stm32.RCC.CFGR.ReplaceBits(stm32.RCC_CFGR_HPRE_Div1, stm32.RCC_CFGR_HPRE_Msk>>stm32.RCC_CFGR_HPRE_Pos, stm32.RCC_CFGR_HPRE_Pos)
	stm32.RCC.CFGR.ReplaceBits(stm32.RCC_CFGR_PPRE1_Div2, stm32.RCC_CFGR_PPRE1_Msk>>stm32.RCC_CFGR_PPRE1_Pos, stm32.RCC_CFGR_PPRE1_Pos)
	stm32.RCC.CFGR.ReplaceBits(stm32.RCC_CFGR_PPRE2_Div2, stm32.RCC_CFGR_PPRE2_Msk>>stm32.RCC_CFGR_PPRE2_Pos, stm32.RCC_CFGR_PPRE2_Pos)

	// PLL source HSE undivided, multiply by 9
	stm32.RCC.CFGR.ClearBits(stm32.RCC_CFGR_PLLXTPRE)
	stm32.RCC.CFGR.SetBits(stm32.RCC_CFGR_PLLSRC)
	stm32.RCC.CFGR.ReplaceBits(stm32.RCC_CFGR_PLLMUL_Mul9, stm32.RCC_CFGR_PLLMUL_Msk>>stm32.RCC_CFGR_PLLMUL_Pos, stm32.RCC_CFGR_PLLMUL_Pos)
	stm32.RCC.CR.SetBits(stm32.RCC_CR_PLLON)
	if !waitBits(&stm32.RCC.CR, stm32.RCC_CR_PLLRDY) {
		return errPLLLock
	}

	// Switch SYSCLK to the PLL
	stm32.RCC.CFGR.ReplaceBits(stm32.RCC_CFGR_SW_PLL, stm32.RCC_CFGR_SW_Msk>>stm32.RCC_CFGR_SW_Pos, stm32.RCC_CFGR_SW_Pos)
	for i := 0; !c.onPLL(); i++ {
		if i == readyTimeout {
			return errClockSwitch
		}
	}

	c.disableUnused()
	return nil
}

func (c *rccClock) CoreFrequency() uint32 {
	return targetHz
}

// onPLL reports whether SYSCLK runs from a locked PLL fed by HSE
func (c *rccClock) onPLL() bool {
	sws := (stm32.RCC.CFGR.Get() & stm32.RCC_CFGR_SWS_Msk) >> stm32.RCC_CFGR_SWS_Pos
	return sws == stm32.RCC_CFGR_SWS_PLL &&
		stm32.RCC.CR.HasBits(stm32.RCC_CR_PLLRDY|stm32.RCC_CR_HSERDY) &&
		stm32.RCC.CFGR.HasBits(stm32.RCC_CFGR_PLLSRC)
}

// disableUnused stops the internal oscillators nothing runs from
func (c *rccClock) disableUnused() {
	stm32.RCC.CSR.ClearBits(stm32.RCC_CSR_LSION)
	stm32.RCC.CR.ClearBits(stm32.RCC_CR_HSION)
}

// waitBits polls reg until bits are set or readyTimeout polls have passed
func waitBits(reg *volatile.Register32, bits uint32) bool {
	for i := 0; i < readyTimeout; i++ {
		if reg.HasBits(bits) {
			return true
		}
	}
	return reg.HasBits(bits)
}
