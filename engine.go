package pack

import (
	"strconv"
	"strings"

	"github.com/signadot/pack/debug"
)

// Encode writes a into root through w. Fields equal to their default are
// omitted unless WithDefaults is given; an object reached by the walk is
// always written, even when every field is omitted.
func Encode[V any](w Writer[V], root V, a Attribute, opts ...Option) error {
	e := &encoder[V]{w: w, opts: NewOptions(opts...)}
	e.op = "encode"
	return e.encode(a, root)
}

// Decode reads root through r into a. Fields absent from the source keep
// their current value; lists and maps present in the source replace the
// destination's content. A failed decode leaves a partially updated.
func Decode[V any](r Reader[V], root V, a Attribute) error {
	d := &decoder[V]{r: r}
	d.op = "decode"
	return d.decode(a, root)
}

type trail struct {
	op   string
	path []string
}

func (t *trail) push(seg string) { t.path = append(t.path, seg) }
func (t *trail) pushIndex(i int) { t.push("[" + strconv.Itoa(i) + "]") }
func (t *trail) pop() { t.path = t.path[:len(t.path)-1] }

func (t *trail) String() string {
	var b strings.Builder
	for i, seg := range t.path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func (t *trail) wrap(err error) error {
	if err == nil {
		return nil
	}
	return &PathError{Op: t.op, Path: t.String(), Err: err}
}

type encoder[V any] struct {
	trail
	w    Writer[V]
	opts Options
}

func (e *encoder[V]) emit(a Attribute) bool {
	return e.opts.WithDefaults || HasValue(a)
}

func (e *encoder[V]) encode(a Attribute, v V) error {
	if debug.Encode() {
		debug.Logf("encode %s %s\n", &e.trail, a.Kind())
	}
	switch a.Kind() {
	case ScalarKind, EnumKind:
		return e.wrap(e.w.Scalar(v, a.(Leaf)))
	case ScalarListKind:
		return e.wrap(e.w.ScalarList(v, a.(ScalarSeq)))
	case ScalarMapKind:
		return e.wrap(e.w.ScalarMap(v, a.(ScalarDict)))
	case ObjectListKind:
		l := a.(ObjectSeq)
		n := l.Len()
		if err := e.w.List(v, n); err != nil {
			return e.wrap(err)
		}
		for i := range n {
			e.pushIndex(i)
			c, err := e.w.Elem(v, i)
			if err != nil {
				return e.wrap(err)
			}
			if err := e.encode(l.ObjectAt(i), c); err != nil {
				return err
			}
			e.pop()
		}
		return nil
	case ObjectMapKind:
		m := a.(ObjectDict)
		if err := e.w.Map(v); err != nil {
			return e.wrap(err)
		}
		for i := range m.Len() {
			k, o := m.EntryAt(i)
			e.push(k)
			c, err := e.w.Entry(v, k)
			if err != nil {
				return e.wrap(err)
			}
			if err := e.encode(o, c); err != nil {
				return err
			}
			e.pop()
		}
		return nil
	case ObjectKind:
		if err := e.w.Object(v); err != nil {
			return e.wrap(err)
		}
		for _, f := range a.(Object).Fields() {
			if !e.emit(f.Attribute) {
				continue
			}
			e.push(f.Key())
			c, err := e.w.Field(v, f.Key())
			if err != nil {
				return e.wrap(err)
			}
			if err := e.encode(f.Attribute, c); err != nil {
				return err
			}
			e.pop()
		}
		return nil
	case VariantKind:
		vt := a.(*Variant)
		m := vt.Get()
		if m == nil {
			return e.wrap(e.w.Object(v))
		}
		if vw, ok := e.w.(VariantWriter[V]); ok {
			c, err := vw.Variant(v, vt, vt.Index())
			if err != nil {
				return e.wrap(err)
			}
			v = c
		}
		return e.encode(m, v)
	}
	panic(&TagError{What: "attribute kind", Tag: a.Kind().String()})
}

type decoder[V any] struct {
	trail
	r Reader[V]
}

func (d *decoder[V]) decode(a Attribute, v V) error {
	if debug.Decode() {
		debug.Logf("decode %s %s\n", &d.trail, a.Kind())
	}
	switch a.Kind() {
	case ScalarKind, EnumKind:
		return d.wrap(d.r.Scalar(v, a.(Leaf)))
	case ScalarListKind:
		return d.wrap(d.r.ScalarList(v, a.(ScalarSeq)))
	case ScalarMapKind:
		return d.wrap(d.r.ScalarMap(v, a.(ScalarDict)))
	case ObjectListKind:
		l := a.(ObjectSeq)
		n, err := d.r.List(v)
		if err != nil {
			return d.wrap(err)
		}
		l.Clear()
		for i := range n {
			d.pushIndex(i)
			if err := d.decode(l.AppendObject(), d.r.Elem(v, i)); err != nil {
				return err
			}
			d.pop()
		}
		return nil
	case ObjectMapKind:
		m := a.(ObjectDict)
		entries, err := d.r.Entries(v)
		if err != nil {
			return d.wrap(err)
		}
		m.Clear()
		for _, ent := range entries {
			d.push(ent.Key)
			if err := d.decode(m.AppendEntry(ent.Key), ent.Value); err != nil {
				return err
			}
			d.pop()
		}
		return nil
	case ObjectKind:
		if err := d.r.Object(v); err != nil {
			return d.wrap(err)
		}
		for _, f := range a.(Object).Fields() {
			c, ok := d.r.Field(v, f.Key())
			if !ok {
				continue
			}
			d.push(f.Key())
			if err := d.decode(f.Attribute, c); err != nil {
				return err
			}
			d.pop()
		}
		return nil
	case VariantKind:
		vt := a.(*Variant)
		if vr, ok := d.r.(VariantReader[V]); ok {
			i, c, ok := vr.Variant(v, vt)
			if !ok {
				return nil
			}
			return d.decode(vt.Select(i), c)
		}
		if err := d.r.Object(v); err != nil {
			return d.wrap(err)
		}
		m := vt.FindBetter(d.r.Keys(v))
		if m == nil {
			return nil
		}
		return d.decode(m, v)
	}
	panic(&TagError{What: "attribute kind", Tag: a.Kind().String()})
}
