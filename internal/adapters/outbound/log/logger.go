package log

import (
	"context"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"-"`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewLogger(il.Prefix))
	return ctx, nil
}

// NewLogger creates the stdout logger. A "-" prefix means no prefix.
func NewLogger(prefix string) *log.Logger {
	if prefix == "-" {
		prefix = ""
	}
	return log.New(os.Stdout, prefix, log.LstdFlags|log.Lmsgprefix)
}
