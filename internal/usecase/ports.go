package usecase

import (
	"context"

	"github.com/3-lines-studio/vitrine/internal/adapters/fs"
	"github.com/3-lines-studio/vitrine/internal/core"
	"github.com/3-lines-studio/vitrine/internal/vdom"
)

type PageRenderer interface {
	Render(state core.State, emit core.Emitter) (*vdom.VNode, error)
}

type ContentSource interface {
	Content(ctx context.Context) (core.Content, error)
}

type FileReader interface {
	ReadFile(ctx context.Context, urlPath string) (core.File, []byte, error)
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(emoji, msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
}

type FileSystem = fs.FileSystem
