package disasm

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x0123, "SYS $123"},
		{0x1200, "JP $200"},
		{0x2ABC, "CALL $ABC"},
		{0x3A12, "SE VA, $12"},
		{0x4B00, "SNE VB, $00"},
		{0x5120, "SE V1, V2"},
		{0x5121, ".word $5121"},
		{0x6112, "LD V1, $12"},
		{0x7FFF, "ADD VF, $FF"},
		{0x8120, "LD V1, V2"},
		{0x8124, "ADD V1, V2"},
		{0x8127, "SUBN V1, V2"},
		{0x8106, "SHR V1"},
		{0x810E, "SHL V1"},
		{0x9120, "SNE V1, V2"},
		{0xA2F0, "LD I, $2F0"},
		{0xB300, "JP V0, $300"},
		{0xC10F, "RND V1, $0F"},
		{0xD125, "DRW V1, V2, $5"},
		{0xE39E, "SKP V3"},
		{0xE3A1, "SKNP V3"},
		{0xF007, "LD V0, DT"},
		{0xF00A, "LD V0, K"},
		{0xF015, "LD DT, V0"},
		{0xF018, "LD ST, V0"},
		{0xF01E, "ADD I, V0"},
		{0xF129, "LD F, V1"},
		{0xF133, "LD B, V1"},
		{0xF555, "LD [I], V5"},
		{0xF565, "LD V5, [I]"},
		{0x00C3, "SCD $3"},
		{0x00FD, "EXIT"},
		{0xF130, "LD HF, V1"},
		{0xFFFF, ".word $FFFF"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%04X", tt.word), func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.word))
		})
	}
}

func TestDisassemble(t *testing.T) {
	program := []byte{
		0x22, 0x04, // call subroutine
		0x12, 0x00, // endless loop
		0x00, 0xEE, // return
		0xFF, // trailing byte
	}
	expected := "_label_200:\n" +
		"200  2204  CALL _func_204\n" +
		"202  1200  JP _label_200\n" +
		"_func_204:\n" +
		"204  00EE  RET\n" +
		"206  FF    .byte $FF\n"

	var buf bytes.Buffer
	assert.NoError(t, Disassemble(program, &buf))
	assert.Equal(t, expected, buf.String())
}

func TestDisassembleSkipTarget(t *testing.T) {
	program := []byte{
		0x31, 0x05, // skip the loop if V1 is 5
		0x12, 0x00, // loop
		0x00, 0xE0,
	}
	expected := "_label_200:\n" +
		"200  3105  SE V1, $05\n" +
		"202  1200  JP _label_200\n" +
		"_label_204:\n" +
		"204  00E0  CLS\n"

	var buf bytes.Buffer
	assert.NoError(t, Disassemble(program, &buf))
	assert.Equal(t, expected, buf.String())
}

func TestDisassembleOutsideTarget(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Disassemble([]byte{0x13, 0x00}, &buf))
	assert.Equal(t, "200  1300  JP $300\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestDisassembleWriteError(t *testing.T) {
	err := Disassemble([]byte{0x00, 0xE0}, failingWriter{})
	assert.ErrorContains(t, err, "disk full")
}
