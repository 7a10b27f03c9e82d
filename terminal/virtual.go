package terminal

import (
	"bytes"
	"io"
	"sync"
)

// VirtualBackend is an in-memory Backend for tests and headless hosts.
// Input is delivered one scripted chunk per Read; output is captured.
type VirtualBackend struct {
	mu     sync.Mutex
	out    bytes.Buffer
	input  [][]byte
	width  int
	height int
	raw    bool
	inits  int
	finis  int

	initErr  error
	sizeErr  error
	writeErr error
}

// NewVirtualBackend returns a VirtualBackend with the given dimensions
func NewVirtualBackend(width, height int) *VirtualBackend {
	return &VirtualBackend{width: width, height: height}
}

// Init records a raw-mode entry
func (v *VirtualBackend) Init() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.initErr != nil {
		return v.initErr
	}
	v.raw = true
	v.inits++
	return nil
}

// Fini records a raw-mode exit
func (v *VirtualBackend) Fini() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.raw = false
	v.finis++
	return nil
}

// Size returns the configured dimensions
func (v *VirtualBackend) Size() (int, int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.width, v.height, nil
}

// Read returns the next scripted chunk, io.EOF once the script is exhausted
func (v *VirtualBackend) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.input) == 0 {
		return 0, io.EOF
	}
	chunk := v.input[0]
	n := copy(p, chunk)
	if n < len(chunk) {
		v.input[0] = chunk[n:]
	} else {
		v.input = v.input[1:]
	}
	return n, nil
}

// Write appends to the captured output
func (v *VirtualBackend) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.writeErr != nil {
		return 0, v.writeErr
	}
	return v.out.Write(p)
}

// --- Test helpers (not part of Backend) ---

// Push queues input chunks for subsequent reads
func (v *VirtualBackend) Push(chunks ...string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, c := range chunks {
		v.input = append(v.input, []byte(c))
	}
}

// Output returns everything written so far
func (v *VirtualBackend) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.out.String()
}

// Reset clears the captured output
func (v *VirtualBackend) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.out.Reset()
}

// SetSize changes the reported dimensions
func (v *VirtualBackend) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = width
	v.height = height
}

// FailInit makes subsequent Init calls return err
func (v *VirtualBackend) FailInit(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.initErr = err
}

// FailSize makes subsequent Size calls return err
func (v *VirtualBackend) FailSize(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = err
}

// FailWrite makes subsequent Write calls return err
func (v *VirtualBackend) FailWrite(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}

// IsRaw reports whether raw mode is currently held
func (v *VirtualBackend) IsRaw() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.raw
}

// InitCount returns how many times Init succeeded
func (v *VirtualBackend) InitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.inits
}

// FiniCount returns how many times Fini was called
func (v *VirtualBackend) FiniCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.finis
}
