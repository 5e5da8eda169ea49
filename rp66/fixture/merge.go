// Package fixture merges partial RP66 fragment files into one well-formed
// record stream and persists it.
package fixture

import (
	"os"

	"github.com/pkg/errors"

	"dlis-forge/rp66/envelope"
	"dlis-forge/rp66/rbuf"
)

// MergeOneRecord concatenates the fragment files verbatim into a single
// visible record whose only segment starts right after the visible record
// header, then rewrites both length fields and writes the result to
// destination.
func MergeOneRecord(destination string, sources []string) error {
	buffer := rbuf.NewBuffer(nil)
	for _, source := range sources {
		bs, err := os.ReadFile(source)
		if err != nil {
			return errors.Wrapf(err, `MergeOneRecord error reading fragment "%s"`, source)
		}
		buffer.Append(bs...)
	}

	if err := envelope.UpdateVisibleRecordAndSegmentLength(buffer, envelope.DefaultSegmentOffset); err != nil {
		return errors.Wrap(err, "MergeOneRecord error rewriting envelope")
	}

	if err := os.WriteFile(destination, buffer.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, `MergeOneRecord error writing result to "%s"`, destination)
	}
	return nil
}

// MergeManyRecords builds one visible record out of the fragment files. The
// first fragment must already be a complete, correctly framed visible record
// and passes through untouched. Every later fragment must hold exactly one
// segment starting at its own header; each gets padded and length-fixed on
// its own before concatenation. The combined result gets a final outer
// length rewrite and is written to destination.
func MergeManyRecords(destination string, sources []string) error {
	if len(sources) == 0 {
		return errors.New("MergeManyRecords error: no source fragments given")
	}

	first, err := os.ReadFile(sources[0])
	if err != nil {
		return errors.Wrapf(err, `MergeManyRecords error reading fragment "%s"`, sources[0])
	}
	buffer := rbuf.NewBuffer(first)

	for _, source := range sources[1:] {
		bs, err := os.ReadFile(source)
		if err != nil {
			return errors.Wrapf(err, `MergeManyRecords error reading fragment "%s"`, source)
		}
		fragment := rbuf.NewBuffer(bs)
		if err := envelope.UpdateSegmentLength(fragment, 0); err != nil {
			return errors.Wrapf(err, `MergeManyRecords error rewriting segment of "%s"`, source)
		}
		buffer.Append(fragment.Bytes()...)
	}

	if err := envelope.UpdateVisibleRecordLength(buffer); err != nil {
		return errors.Wrap(err, "MergeManyRecords error rewriting visible record length")
	}

	if err := os.WriteFile(destination, buffer.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, `MergeManyRecords error writing result to "%s"`, destination)
	}
	return nil
}
