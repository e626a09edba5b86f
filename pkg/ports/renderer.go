package ports

import (
	"io"

	"github.com/aretw0/entroplot/pkg/domain"
)

// FigureRenderer writes a Figure as a standalone document.
type FigureRenderer interface {
	Render(w io.Writer, fig *domain.Figure) error
}
