package acscontainer

import (
	"github.com/msagent-tools/acsingest/internal/acsbyte"
	pkgerrors "github.com/pkg/errors"
)

// parseGestureRefs decodes the GestureRefs block: a count followed by
// (name length, name, 2-byte terminator, offset, size) entries.
func parseGestureRefs(r *acsbyte.Reader) ([]GestureRef, error) {
	count, err := r.U32()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "gesture refs: count")
	}
	refs := make([]GestureRef, 0, count)
	for i := uint32(0); i < count; i++ {
		nameLen, err := r.U32()
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "gesture ref %d: name length", i)
		}
		name, err := r.UTF16String(int(nameLen))
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "gesture ref %d: name", i)
		}
		if err := r.Skip(2); err != nil { // null terminator
			return nil, pkgerrors.Wrapf(err, "gesture ref %d: terminator", i)
		}
		offset, err := r.U32()
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "gesture ref %d: offset", i)
		}
		size, err := r.U32()
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "gesture ref %d: size", i)
		}
		refs = append(refs, GestureRef{Name: name, Offset: offset, Size: size})
	}
	return refs, nil
}

// imageRef is a raw ImageRefs table entry; Checksum is parsed but
// never validated.
type imageRef struct {
	Offset   uint32
	Size     uint32
	Checksum uint32
}

// parseImageRefs decodes the ImageRefs block: a count followed by
// (offset, size, checksum) entries.
func parseImageRefs(r *acsbyte.Reader) ([]imageRef, error) {
	count, err := r.U32()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "image refs: count")
	}
	refs := make([]imageRef, 0, count)
	for i := uint32(0); i < count; i++ {
		offset, err := r.U32()
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "image ref %d: offset", i)
		}
		size, err := r.U32()
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "image ref %d: size", i)
		}
		checksum, err := r.U32()
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "image ref %d: checksum", i)
		}
		refs = append(refs, imageRef{Offset: offset, Size: size, Checksum: checksum})
	}
	return refs, nil
}
