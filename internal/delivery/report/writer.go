package report

import (
	"bufio"
	"io"

	"dippy_dump/internal/domain/game"
)

const (
	PositionsTag = "POSITIONS"
	OrdersTag    = "ORDERS"
)

// Writer prints the droidippy report format. Lines are buffered until Flush.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (r *Writer) WritePhase(phase game.Phase) error {
	if err := r.line(phase.Header()); err != nil {
		return err
	}
	return r.line(PositionsTag)
}

func (r *Writer) WritePosition(position game.Position) error {
	return r.line(position.String())
}

func (r *Writer) BeginOrders() error {
	return r.line(OrdersTag)
}

func (r *Writer) WriteOrder(order game.Order) error {
	return r.line(order.String())
}

func (r *Writer) Flush() error {
	return r.w.Flush()
}

func (r *Writer) line(s string) error {
	if _, err := r.w.WriteString(s); err != nil {
		return err
	}
	return r.w.WriteByte('\n')
}
