// Package seqbuf holds the joined-sequence representation shared by the
// repeat index components.
package seqbuf

// Base codes stored in a joined buffer. Anything that is not A/C/G/T is
// stored as Ambiguous.
const (
	A byte = iota
	C
	G
	T
	Ambiguous
)

// Alphabet maps a base code to its letter.
const Alphabet = "ACGTN"

// Sequence is a random-access view over a joined sequence.
type Sequence interface {
	Len() int
	At(i int) byte
}

// Codes is a joined sequence stored one base code per byte.
type Codes []byte

func (c Codes) Len() int       { return len(c) }
func (c Codes) At(i int) byte  { return c[i] }
func (c Codes) String() string { return Decode(c, 0, len(c)) }

var codeOf [256]byte

func init() {
	for i := range codeOf {
		codeOf[i] = Ambiguous
	}
	codeOf['A'], codeOf['a'] = A, A
	codeOf['C'], codeOf['c'] = C, C
	codeOf['G'], codeOf['g'] = G, G
	codeOf['T'], codeOf['t'] = T, T
}

// Code returns the base code of an ASCII nucleotide.
func Code(b byte) byte { return codeOf[b] }

// IsBase reports whether b is an unambiguous nucleotide letter.
func IsBase(b byte) bool { return codeOf[b] != Ambiguous }

// Encode converts ASCII nucleotides to codes.
func Encode(s []byte) Codes {
	out := make(Codes, len(s))
	for i, b := range s {
		out[i] = codeOf[b]
	}
	return out
}

// Decode renders up to n bases of seq starting at start, stopping at the end
// of the sequence.
func Decode(seq Sequence, start, n int) string {
	if start < 0 || start >= seq.Len() || n <= 0 {
		return ""
	}
	if rem := seq.Len() - start; n > rem {
		n = rem
	}
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		c := seq.At(start + i)
		if c > Ambiguous {
			c = Ambiguous
		}
		buf[i] = Alphabet[c]
	}
	return string(buf)
}

// ReverseComplement returns the reverse complement of a code sequence.
// Ambiguous codes stay ambiguous.
func ReverseComplement(seq Sequence) Codes {
	n := seq.Len()
	out := make(Codes, n)
	for i := 0; i < n; i++ {
		c := seq.At(n - 1 - i)
		if c < Ambiguous {
			c = T - c
		} else {
			c = Ambiguous
		}
		out[i] = c
	}
	return out
}

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = 'N'
	}
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
}

// RevCompString reverse-complements an ACGT string. Other letters become N.
func RevCompString(s string) string {
	n := len(s)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[s[n-1-i]]
	}
	return string(out)
}
