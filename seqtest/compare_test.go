// Copyright 2025 The seqsim authors
// Licensed under the MIT license. See license text in the LICENSE file.

package seqtest_test

import (
	"testing"

	"github.com/synbit/seqsim"
	"github.com/synbit/seqsim/logic"
	"github.com/synbit/seqsim/seqtest"
)

func TestComparePart(t *testing.T) {
	// xor built from four NANDs against the primitive gate. The netlist
	// is three gate levels deep, so it needs the longer cycle to settle.
	xor, err := seqsim.Chip("XORNAND", "a, b", "out", seqsim.Parts{
		logic.Nand("a=a, b=b, out=nab"),
		logic.Nand("a=a, b=nab, out=w0"),
		logic.Nand("a=b, b=nab, out=w1"),
		logic.Nand("a=w0, b=w1, out=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	seqtest.ComparePart(t, 8, logic.Xor, xor)
}

func TestComparePart_bus(t *testing.T) {
	or2, err := seqsim.Chip("OR2", "in[2]", "out", seqsim.Parts{
		logic.Or("a=in[0], b=in[1], out=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	nor2, err := seqsim.Chip("OR2NOR", "in[2]", "out", seqsim.Parts{
		logic.Nor("a=in[0], b=in[1], out=n"),
		logic.Not("in=n, out=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	seqtest.ComparePart(t, 4, or2, nor2)
}

func TestComparePart_clocked(t *testing.T) {
	reg, err := seqsim.Chip("REG", "in", "out", seqsim.Parts{
		logic.DFF("in=in, out=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	// same register with a double inversion ahead of the input
	regnn, err := seqsim.Chip("REGNN", "in", "out", seqsim.Parts{
		logic.Not("in=in, out=n0"),
		logic.Not("in=n0, out=n1"),
		logic.DFF("in=n1, out=out"),
	})
	if err != nil {
		t.Fatal(err)
	}
	seqtest.ComparePart(t, 8, reg, regnn)
}
