//go:build unix

package terminal

import "fmt"

// NewBackend returns the backend registered under kind: "unix" or "tcell"
func NewBackend(kind string) (Backend, error) {
	switch kind {
	case "", "unix":
		return NewUnixBackend(), nil
	case "tcell":
		return NewTcellBackend()
	}
	return nil, fmt.Errorf("unknown backend %q", kind)
}
