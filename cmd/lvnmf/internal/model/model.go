// SPDX-License-Identifier: MIT

// Package model persists a factorization as a single msgpack file, so a
// later run can rebuild W·H or score it against new data without the CSVs.
package model

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/lvnmf/matrix"
	"github.com/katalvlaran/lvnmf/nmf"
)

// FileName is the name factorize gives the model inside its output directory.
const FileName = "model.msgpack"

// ErrCorrupt is returned when a decoded model has inconsistent shapes.
var ErrCorrupt = errors.New("model: inconsistent factor shapes")

// Factor is a row-major matrix in transport form.
type Factor struct {
	Rows int       `msgpack:"rows"`
	Cols int       `msgpack:"cols"`
	Data []float64 `msgpack:"data"`
}

// Model is a finished factorization X ≈ W·H.
type Model struct {
	Rule       string    `msgpack:"rule"`
	Rank       int       `msgpack:"rank"`
	Iterations int       `msgpack:"iterations"`
	Converged  bool      `msgpack:"converged"`
	Divergence []float64 `msgpack:"divergence"`
	W          Factor    `msgpack:"w"`
	H          Factor    `msgpack:"h"`
}

func factorOf(d *matrix.Dense) Factor {
	r, c := d.Shape()
	return Factor{Rows: r, Cols: c, Data: append([]float64(nil), d.Data()...)}
}

// FromResult captures res, produced under rule.
func FromResult(rule nmf.UpdateRule, res *nmf.Result) *Model {
	return &Model{
		Rule:       rule.String(),
		Rank:       res.W.Cols(),
		Iterations: res.Iterations,
		Converged:  res.Converged,
		Divergence: append([]float64(nil), res.Divergence...),
		W:          factorOf(res.W),
		H:          factorOf(res.H),
	}
}

// UpdateRule parses the stored rule name.
func (m *Model) UpdateRule() (nmf.UpdateRule, error) {
	return nmf.ParseUpdateRule(m.Rule)
}

// Factors rebuilds W and H as matrices.
func (m *Model) Factors() (w, h *matrix.Dense, err error) {
	if w, err = matrix.NewDenseFrom(m.W.Rows, m.W.Cols, m.W.Data); err != nil {
		return nil, nil, fmt.Errorf("%w: W: %w", ErrCorrupt, err)
	}
	if h, err = matrix.NewDenseFrom(m.H.Rows, m.H.Cols, m.H.Data); err != nil {
		return nil, nil, fmt.Errorf("%w: H: %w", ErrCorrupt, err)
	}

	return w, h, nil
}

func (m *Model) validate() error {
	if m.Rank <= 0 || m.W.Cols != m.Rank || m.H.Rows != m.Rank {
		return fmt.Errorf("%w: rank %d, W %dx%d, H %dx%d",
			ErrCorrupt, m.Rank, m.W.Rows, m.W.Cols, m.H.Rows, m.H.Cols)
	}
	if _, err := m.UpdateRule(); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return nil
}

// Encode writes m to w.
func Encode(w io.Writer, m *Model) error {
	data, err := msgpack.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	_, err = w.Write(data)

	return err
}

// Decode reads and validates a model from r.
func Decode(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var m Model
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Save writes m to path.
func Save(path string, m *Model) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, m)
}

// Load reads the model at path.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
