package dxf

import "strings"

// resolver is the single deterministic post-read pass that builds the
// handle->value index spanning every entity, table entry, object and
// block, then re-derives the cross-references that group codes only
// express as a raw Handle (spec.md §4.7). It plays the role the teacher's
// container.go gave to Resolve/resolveAndCast[T]: there, a *Reference was
// dereferenced lazily against the teacher's xref table on first use; here
// the whole file is already in memory by the time resolve runs, so the
// index is built once, eagerly, and every cross-reference is fixed up in
// one pass rather than on demand.
type resolver struct {
	byHandle map[Handle]any
	log      *Log
}

func newResolver(log *Log) *resolver {
	return &resolver{byHandle: make(map[Handle]any), log: log}
}

// index registers a value's handle. A later registration of the same
// handle replaces the earlier one and nothing is reported: duplicate
// handles are not detected. buildIndex depends on this replacement, since a
// block indexed under its BlockRecordHandle is replaced by the
// BLOCK_RECORD table entry that carries that handle.
func (r *resolver) index(h Handle, v any) {
	if h == NoHandle {
		return
	}
	r.byHandle[h] = v
}

// lookup resolves a handle to the value registered for it, the generic
// counterpart of the teacher's resolveAndCast[T]: T fixes the expected Go
// type so callers get a typed zero value (rather than a bare "not found"
// bool) when the handle is absent, stale, or refers to something of a
// different concrete type than expected.
func lookupHandle[T any](r *resolver, h Handle) (T, bool) {
	var zero T
	if h == NoHandle {
		return zero, false
	}
	v, ok := r.byHandle[h]
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// buildIndex registers every handle-bearing value in doc so later
// resolveReferences calls can look them up.
func (r *resolver) buildIndex(doc *Document) {
	for _, e := range doc.Entities {
		r.index(e.Common().Handle, e)
	}
	for _, b := range doc.Blocks {
		r.index(b.Handle, b)
		r.index(b.BlockRecordHandle, b)
		for _, e := range b.Entities {
			r.index(e.Common().Handle, e)
		}
	}
	for _, o := range doc.Objects {
		r.index(o.Common().Handle, o)
	}
	doc.eachTable(func(h Handle, e TableEntry) { r.index(h, e) })
}

// resolveReferences checks the cross-references that group codes only
// express as a raw Handle (dictionary entries, layout->block-record,
// image->imagedef) and logs a Warning, in either mode, for each one that
// names no indexed handle. References stay raw Handles and are not
// rewritten; owner handles and reactors are not checked (spec.md §4.7).
func (r *resolver) resolveReferences(doc *Document) {
	for _, o := range doc.Objects {
		switch obj := o.(type) {
		case *Dictionary:
			for i, h := range obj.Handles {
				if _, ok := r.byHandle[h]; !ok && h != NoHandle {
					r.log.Warningf(KindDanglingReference, &RecordContext{
						Section: "OBJECTS", Handle: obj.Handle, TypeDXF: obj.DXFType(),
					}, "dictionary entry %q references unknown handle %s", obj.Names[i], h)
				}
			}
		case *Layout:
			if _, ok := lookupHandle[*BlockRecord](r, obj.BlockHandle); !ok && obj.BlockHandle != NoHandle {
				r.log.Warningf(KindDanglingReference, &RecordContext{
					Section: "OBJECTS", Handle: obj.Handle, TypeDXF: "LAYOUT",
				}, "layout %q references unknown block record %s", obj.Name, obj.BlockHandle)
			}
		}
	}
	for _, e := range doc.Entities {
		switch ent := e.(type) {
		case *RasterImage:
			if _, ok := lookupHandle[*ImageDef](r, ent.ImageDefHandle); !ok && ent.ImageDefHandle != NoHandle {
				r.log.Warningf(KindDanglingReference, &RecordContext{
					Section: "ENTITIES", Handle: ent.Handle, TypeDXF: "IMAGE",
				}, "image entity references unknown image definition %s", ent.ImageDefHandle)
			}
		}
	}
}

// isModelOrPaperSpaceName reports whether a BLOCK_RECORD name identifies
// one of the implicit model-space/paper-space block records every DXF
// database has, rather than a user-defined block (spec.md §4.7).
func isModelOrPaperSpaceName(name string) bool {
	upper := strings.ToUpper(name)
	return strings.HasPrefix(upper, "*MODEL_SPACE") || strings.HasPrefix(upper, "*PAPER_SPACE")
}

// placeEntities re-homes entities read from the flat ENTITIES section
// whose owner handle resolves to a user-defined block record, moving them
// into that block's own Entities slice (spec.md §4.7: "other block-owned
// entities are placed inside their block"). Model-space/paper-space
// entities, the common case, stay in doc.Entities untouched.
func (r *resolver) placeEntities(doc *Document) {
	byBlockRecord := make(map[Handle]*Block, len(doc.Blocks))
	for _, b := range doc.Blocks {
		byBlockRecord[b.BlockRecordHandle] = b
	}

	kept := doc.Entities[:0:0]
	for _, e := range doc.Entities {
		owner := e.Common().OwnerHandle
		br, ok := lookupHandle[*BlockRecord](r, owner)
		if !ok || isModelOrPaperSpaceName(br.Name) {
			kept = append(kept, e)
			continue
		}
		b, ok := byBlockRecord[owner]
		if !ok {
			kept = append(kept, e)
			continue
		}
		b.Entities = append(b.Entities, e)
	}
	doc.Entities = kept
}
