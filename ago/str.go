package ago

// Str is an owned Ago string. Every function that returns a *Str hands
// ownership to the caller; the runtime keeps no reference to it afterwards.
// The nil *Str is the absent value (inanis).
//
// The byte count of the buffer is authoritative. A Str may hold a NUL byte
// if it was built from outside input, and length reports it like any other.
type Str struct {
	buf []byte
}

// NewStr returns an owned copy of s
func NewStr(s string) *Str {
	return &Str{buf: []byte(s)}
}

// NewStrBytes returns an owned copy of b
func NewStrBytes(b []byte) *Str {
	buf := make([]byte, len(b))
	copy(buf, b)
	return &Str{buf: buf}
}

// Len returns the byte count; an absent string has length 0
func (s *Str) Len() int64 {
	if s == nil {
		return 0
	}
	return int64(len(s.buf))
}

// String returns the contents; an absent string is ""
func (s *Str) String() string {
	if s == nil {
		return ""
	}
	return string(s.buf)
}

// Bytes returns the underlying buffer. The caller must not modify it.
func (s *Str) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.buf
}

// CString returns a NUL-terminated copy for handing to C callers
func (s *Str) CString() []byte {
	out := make([]byte, s.Len()+1)
	if s != nil {
		copy(out, s.buf)
	}
	return out
}

// Release drops the buffer now instead of waiting for the collector.
// A released string reads as empty. Release on nil is a no-op.
func (s *Str) Release() {
	if s == nil {
		return
	}
	tracef("release string (%d bytes)", len(s.buf))
	s.buf = nil
}

// Concat returns a new string holding a followed by b. Absent inputs count
// as empty. The result never shares storage with either input.
func Concat(a, b *Str) *Str {
	la, lb := a.Len(), b.Len()
	total := la + lb
	if total < 0 || total > maxStrBytes {
		Fail(AllocationFault, "string concatenation of %d and %d bytes is too large", la, lb)
	}
	buf := make([]byte, 0, total)
	buf = append(buf, a.Bytes()...)
	buf = append(buf, b.Bytes()...)
	return &Str{buf: buf}
}

// Length returns the byte count of s; an absent string has length 0
func Length(s *Str) int64 {
	return s.Len()
}

// CharAt returns byte i of s as a new one-character string
func CharAt(s *Str, i int64) *Str {
	if s == nil {
		Fail(NullAccess, "cannot index null string")
	}
	n := s.Len()
	if i < 0 || i >= n {
		Fail(BoundsFault, "string index out of bounds: %d (length: %d)", i, n)
	}
	return &Str{buf: []byte{s.buf[i]}}
}

// maxStrBytes is the largest string the runtime will allocate
const maxStrBytes = 1 << 40
