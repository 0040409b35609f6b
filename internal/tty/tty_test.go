package tty

import (
	"bytes"
	"os"
	"testing"
)

func TestIsTTY_Nil(t *testing.T) {
	if IsTTY(nil) {
		t.Error("nil file should not be a TTY")
	}
}

func TestIsTTY_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if IsTTY(r) || IsTTY(w) {
		t.Error("pipe ends should not be TTYs")
	}
	if IsTerminalWriter(w) {
		t.Error("pipe writer should not be a terminal writer")
	}
}

func TestIsTerminalWriter_NotAFile(t *testing.T) {
	if IsTerminalWriter(&bytes.Buffer{}) {
		t.Error("buffer should not be a terminal writer")
	}
}
