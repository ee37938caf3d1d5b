// Package gfx implements a small memory-mapped graphics adapter: a 16x16
// grid of RGBA pixels driven by 16-bit instruction words. The Cpu never
// talks to the adapter directly; a host picks an address range (by
// convention 0xFF00) and feeds the words it finds there to Submit.
package gfx

import "mosey/mask"

// Grid dimensions. Coordinates are 4 bits each, so the instruction word can
// address every pixel.
const (
	Width  = 16
	Height = 16
)

// A Pixel is one RGBA color. Alpha is always full; the instruction word has
// no bits for it.
type Pixel struct {
	R, G, B, A byte
}

// The instruction word, most significant bit first:
//
//	bit 15    opcode        0 = clear, 1 = draw
//	bit 14    clear subtype 0 = screen, 1 = set clear color
//	bits 10-13  X coordinate
//	bits 6-9    Y coordinate
//	bits 4-5    red
//	bits 2-3    green
//	bits 0-1    blue
//
// Each 2-bit channel scales to 8 bits by multiplying with 85, so 0b11 maps
// to 255.
const channelScale = 85

// decodeColor extracts the three 2-bit channels of word.
func decodeColor(word uint16) Pixel {
	return Pixel{
		R: byte(mask.Field(word, 4, 2)) * channelScale,
		G: byte(mask.Field(word, 2, 2)) * channelScale,
		B: byte(mask.Field(word, 0, 2)) * channelScale,
		A: 0xFF,
	}
}

// An Adapter owns the pixel grid and the clear color. It is written by the
// emulated program (through the host's memory-mapped convention) and read by
// a renderer; the host is responsible for synchronising the two.
type Adapter struct {
	pixels [Height][Width]Pixel
	clear  Pixel
}

// New returns an Adapter with every pixel set to the given clear color.
func New(clear Pixel) *Adapter {
	a := &Adapter{clear: clear}
	a.fill(clear)
	return a
}

func (a *Adapter) fill(p Pixel) {
	for y := range a.pixels {
		for x := range a.pixels[y] {
			a.pixels[y][x] = p
		}
	}
}

// Submit decodes and executes one instruction word. Draw writes the decoded
// color at (x, y); clear-screen floods the grid with the clear color;
// set-color replaces the clear color without touching the grid.
func (a *Adapter) Submit(word uint16) {
	draw := mask.Bit(word, 15)
	if draw {
		x := mask.Field(word, 10, 4)
		y := mask.Field(word, 6, 4)
		a.pixels[y][x] = decodeColor(word)
		return
	}
	if setColor := mask.Bit(word, 14); setColor {
		a.clear = decodeColor(word)
		return
	}
	a.fill(a.clear)
}

// Snapshot returns a copy of the pixel grid for the renderer, indexed
// [y][x].
func (a *Adapter) Snapshot() [Height][Width]Pixel {
	return a.pixels
}

// ClearColor returns the color a clear-screen instruction floods with.
func (a *Adapter) ClearColor() Pixel {
	return a.clear
}
