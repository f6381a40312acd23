package memory

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/fixseq"
	"github.com/wippyai/fixseq/errors"
)

// PageSize is the size of one linear memory page in bytes.
const PageSize = 65536

// Config controls the host memory.
type Config struct {
	// Pages is the initial size in pages.
	Pages uint32
	// MaxPages caps growth. Zero means Pages.
	MaxPages uint32
}

// Linear is a standalone linear memory owned by its own wazero runtime.
type Linear struct {
	runtime wazero.Runtime
	module  api.Module
	mem     *Wrapper
}

// NewLinear instantiates a memory of the given number of pages.
func NewLinear(ctx context.Context, pages uint32) (*Linear, error) {
	return NewLinearWithConfig(ctx, Config{Pages: pages})
}

func NewLinearWithConfig(ctx context.Context, cfg Config) (*Linear, error) {
	maxPages := cfg.MaxPages
	if maxPages == 0 {
		maxPages = cfg.Pages
	}
	if maxPages < cfg.Pages {
		return nil, errors.InvalidInput(errors.PhaseMemory, "max pages below initial pages")
	}

	runtimeCfg := wazero.NewRuntimeConfig().WithMemoryLimitPages(maxPages)
	runtime := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	module, err := runtime.Instantiate(ctx, hostModule(cfg.Pages, maxPages))
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, errors.Instantiation(err)
	}

	exported := module.ExportedMemory(ExportName)
	if exported == nil {
		_ = runtime.Close(ctx)
		return nil, errors.Instantiation(errors.InvalidData(errors.PhaseMemory, nil, "no exported memory"))
	}

	fixseq.Logger().Debug("linear memory ready",
		zap.Uint32("pages", cfg.Pages),
		zap.Uint32("max_pages", maxPages))

	return &Linear{runtime: runtime, module: module, mem: Wrap(exported)}, nil
}

// Memory returns the byte-level accessor.
func (l *Linear) Memory() *Wrapper {
	return l.mem
}

// Size returns the current size in bytes.
func (l *Linear) Size() uint32 {
	return l.mem.Size()
}

// Grow adds delta pages and returns the previous page count.
func (l *Linear) Grow(delta uint32) (uint32, error) {
	prev, ok := l.mem.Mem.Grow(delta)
	if !ok {
		return 0, errors.Overflow(errors.PhaseMemory, "grow", delta, "memory limit")
	}
	return prev, nil
}

// Close releases the runtime and everything instantiated in it.
func (l *Linear) Close(ctx context.Context) error {
	return l.runtime.Close(ctx)
}
