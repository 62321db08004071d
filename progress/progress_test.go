package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_Running(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Running("orders.xlsx")
	p.RunOK()
	assert.Equal(t, "[ ] orders.xlsx\r[✓]\n", buf.String())
	buf.Reset()

	p.Running("%s", "missing.xls")
	p.RunFail()
	assert.Equal(t, "[ ] missing.xls\r[✗]\n", buf.String())
}

func TestProgress_Interrupt(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Running("abc")
	buf.Reset()
	p.Warning("slow %d", 1)
	assert.Equal(t, "\r       \r[!] slow 1\n[ ] abc", buf.String())
	buf.Reset()

	p.RunOK()
	p.Status("done")
	assert.Equal(t, "\r[✓]\n[>] done\n", buf.String())
}

func TestProgress_Cursor(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Cursor(false)
	assert.Empty(t, buf.String(), "no escapes outside a terminal")

	p.color = true
	p.Cursor(false)
	p.Cursor(true)
	assert.Equal(t, "\033[?25l\033[?25h", buf.String())
}

func TestProgress_Nil(t *testing.T) {
	var p *Progress
	assert.NotPanics(t, func() {
		p.Running("x")
		p.Status("x")
		p.Warning("x")
		p.RunOK()
		p.RunFail()
		p.Cursor(true)
	})
}
