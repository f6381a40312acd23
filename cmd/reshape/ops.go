package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/wippyai/fixseq"
	"github.com/wippyai/fixseq/errors"
	"github.com/wippyai/fixseq/nd"
)

// params carries the numeric flags an operation may read.
type params struct {
	m, n, h, w int
}

type operation struct {
	run   func(s *fixseq.Seq[int64], p params) (string, error)
	name  string
	args  string
	about string
}

var operations = []operation{
	{name: "split", args: "m", about: "first m elements and the rest", run: opSplit},
	{name: "rsplit", args: "m", about: "all but the last m, then the last m", run: opRSplit},
	{name: "chunks", args: "m", about: "chunks of m plus a trailing remainder", run: opChunks},
	{name: "rchunks", args: "m", about: "leading remainder plus chunks of m", run: opRChunks},
	{name: "chunks-exact", args: "m", about: "chunks of m, length must divide", run: opChunksExact},
	{name: "spread", args: "m", about: "m interleaved lanes", run: opSpread},
	{name: "rspread", args: "m", about: "leading remainder plus m equal lanes", run: opRSpread},
	{name: "spread-exact", args: "m", about: "m equal lanes, m must divide", run: opSpreadExact},
	{name: "transpose", args: "h w", about: "h x w row-major grid to w x h", run: opTranspose},
	{name: "rotate-left", args: "n", about: "rotate left by n", run: opRotateLeft},
	{name: "rotate-right", args: "n", about: "rotate right by n", run: opRotateRight},
	{name: "shift-left", args: "n", about: "push n in at the back, report what fell out", run: opShiftLeft},
	{name: "shift-right", args: "n", about: "push n in at the front, report what fell out", run: opShiftRight},
	{name: "truncate", args: "m", about: "keep the first m", run: opTruncate},
	{name: "rtruncate", args: "m", about: "keep the last m", run: opRTruncate},
	{name: "extend", args: "m n", about: "grow to m, new slots hold n", run: opExtend},
	{name: "rextend", args: "m n", about: "grow to m at the front, new slots hold n", run: opRExtend},
	{name: "resize", args: "m n", about: "truncate or extend to m", run: opResize},
	{name: "rresize", args: "m n", about: "truncate or extend to m at the front", run: opRResize},
	{name: "sum", about: "sum of elements", run: opSum},
	{name: "min", about: "smallest element", run: opMin},
	{name: "max", about: "largest element", run: opMax},
	{name: "argmin", about: "index of the first smallest element", run: opArgmin},
	{name: "argmax", about: "index of the first largest element", run: opArgmax},
	{name: "diff", about: "adjacent differences", run: opDiff},
	{name: "integrate", about: "running sums", run: opIntegrate},
	{name: "grid", args: "h w", about: "view as an h x w array", run: opGrid},
}

func lookup(name string) (operation, bool) {
	i := slices.IndexFunc(operations, func(op operation) bool { return op.name == name })
	if i < 0 {
		return operation{}, false
	}
	return operations[i], true
}

// parseSeq reads comma or space separated integers.
func parseSeq(text string) (*fixseq.Seq[int64], error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	items := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.ParseFailed("sequence element "+strconv.Quote(f), err)
		}
		items = append(items, v)
	}
	return fixseq.From(items), nil
}

// apply runs the named operation over text and renders the result.
func apply(name, text string, p params) (string, error) {
	op, ok := lookup(name)
	if !ok {
		return "", errors.InvalidInput(errors.PhaseParse, "unknown operation "+strconv.Quote(name))
	}
	s, err := parseSeq(text)
	if err != nil {
		return "", err
	}
	fixseq.Logger().Sugar().Debugw("apply", "op", op.name, "len", s.Len(), "m", p.m, "n", p.n)
	return op.run(s, p)
}

func formatAll(parts []*fixseq.Seq[int64]) string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.String()
	}
	return "[" + strings.Join(out, " ") + "]"
}

func opSplit(s *fixseq.Seq[int64], p params) (string, error) {
	a, b, err := fixseq.Split(s, p.m)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v %v", a, b), nil
}

func opRSplit(s *fixseq.Seq[int64], p params) (string, error) {
	a, b, err := fixseq.RSplit(s, p.m)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v %v", a, b), nil
}

func opChunks(s *fixseq.Seq[int64], p params) (string, error) {
	chunks, rest, err := fixseq.Chunks(s, p.m)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s rest=%v", formatAll(chunks), rest), nil
}

func opRChunks(s *fixseq.Seq[int64], p params) (string, error) {
	rest, chunks, err := fixseq.RChunks(s, p.m)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rest=%v %s", rest, formatAll(chunks)), nil
}

func opChunksExact(s *fixseq.Seq[int64], p params) (string, error) {
	chunks, err := fixseq.ChunksExact(s, p.m)
	if err != nil {
		return "", err
	}
	return formatAll(chunks), nil
}

func opSpread(s *fixseq.Seq[int64], p params) (string, error) {
	lanes, err := fixseq.Spread(s, p.m)
	if err != nil {
		return "", err
	}
	return formatAll(lanes), nil
}

func opRSpread(s *fixseq.Seq[int64], p params) (string, error) {
	rest, lanes, err := fixseq.RSpread(s, p.m)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rest=%v %s", rest, formatAll(lanes)), nil
}

func opSpreadExact(s *fixseq.Seq[int64], p params) (string, error) {
	lanes, err := fixseq.SpreadExact(s, p.m)
	if err != nil {
		return "", err
	}
	return formatAll(lanes), nil
}

func opTranspose(s *fixseq.Seq[int64], p params) (string, error) {
	t, err := fixseq.Transpose(s, p.h, p.w)
	if err != nil {
		return "", err
	}
	rows, err := fixseq.ChunksExact(t, p.h)
	if err != nil {
		return "", err
	}
	return formatAll(rows), nil
}

func opRotateLeft(s *fixseq.Seq[int64], p params) (string, error) {
	if err := fixseq.RotateLeft(s, p.n); err != nil {
		return "", err
	}
	return s.String(), nil
}

func opRotateRight(s *fixseq.Seq[int64], p params) (string, error) {
	if err := fixseq.RotateRight(s, p.n); err != nil {
		return "", err
	}
	return s.String(), nil
}

func opShiftLeft(s *fixseq.Seq[int64], p params) (string, error) {
	out, err := fixseq.ShiftLeft(s, int64(p.n))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v out=%d", s, out), nil
}

func opShiftRight(s *fixseq.Seq[int64], p params) (string, error) {
	out, err := fixseq.ShiftRight(s, int64(p.n))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v out=%d", s, out), nil
}

func opTruncate(s *fixseq.Seq[int64], p params) (string, error) {
	t, err := fixseq.Truncate(s, p.m)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

func opRTruncate(s *fixseq.Seq[int64], p params) (string, error) {
	t, err := fixseq.RTruncate(s, p.m)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

type regrowFunc func(*fixseq.Seq[int64], int, fixseq.Generator[int64]) (*fixseq.Seq[int64], error)

func regrowWith(f regrowFunc) func(*fixseq.Seq[int64], params) (string, error) {
	return func(s *fixseq.Seq[int64], p params) (string, error) {
		pad := int64(p.n)
		out, err := f(s, p.m, fixseq.Infallible(func(int) int64 { return pad }))
		if err != nil {
			return "", err
		}
		return out.String(), nil
	}
}

var (
	opExtend  = regrowWith(fixseq.Extend[int64])
	opRExtend = regrowWith(fixseq.RExtend[int64])
	opResize  = regrowWith(fixseq.Resize[int64])
	opRResize = regrowWith(fixseq.RResize[int64])
)

func opSum(s *fixseq.Seq[int64], _ params) (string, error) {
	v, err := fixseq.Sum(s)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(v, 10), nil
}

func optional(v any, ok bool, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if !ok {
		return "none", nil
	}
	return fmt.Sprint(v), nil
}

func opMin(s *fixseq.Seq[int64], _ params) (string, error)    { return optional(fixseq.Min(s)) }
func opMax(s *fixseq.Seq[int64], _ params) (string, error)    { return optional(fixseq.Max(s)) }
func opArgmin(s *fixseq.Seq[int64], _ params) (string, error) { return optional(fixseq.Argmin(s)) }
func opArgmax(s *fixseq.Seq[int64], _ params) (string, error) { return optional(fixseq.Argmax(s)) }

func opDiff(s *fixseq.Seq[int64], _ params) (string, error) {
	d, err := fixseq.Differentiate(s)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

func opIntegrate(s *fixseq.Seq[int64], _ params) (string, error) {
	d, err := fixseq.Integrate(s)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

func opGrid(s *fixseq.Seq[int64], p params) (string, error) {
	a, err := nd.FromFlat(s, p.h, p.w)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}
