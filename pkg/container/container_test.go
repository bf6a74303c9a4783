// Copyright (c) 2022-2023 The Aesbox Authors
// The use of this source code is goverened by a BSD-style
// license that can be found in the LICENSE-file.

package container

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aesbox/aesbox/pkg/ocb2"
)

// countingSource is a deterministic Source for tests.
type countingSource struct {
	n byte
}

func (s *countingSource) Fill(p []byte) error {
	for i := range p {
		p[i] = s.n
		s.n++
	}
	return nil
}

func TestHeaderMarshal(t *testing.T) {
	h := Header{Mode: ModeOCB, Encoding: Base64, Nb: 4, Nk: 4, Marker: Unibyte}
	assert.Equal(t, "aes-encrypted V 1.2-OCB-B-4-4-U\n", string(h.Marshal()))

	h = Header{Mode: ModeCBC, Encoding: Raw, Nb: 8, Nk: 6, Marker: Multibyte}
	assert.Equal(t, "aes-encrypted V 1.2-CBC-N-8-6-M\n", string(h.Marshal()))
}

func TestHeaderParseRejects(t *testing.T) {
	bad := []string{
		"",
		"aes-encrypted V 1.2-OCB-B-4-4-U",     // no newline
		"aes-encrypted V 1.3-OCB-B-4-4-U\n",   // wrong version
		"aes-encrypted V 1.2-GCM-B-4-4-U\n",   // unknown mode
		"aes-encrypted V 1.2-OCB-X-4-4-U\n",   // unknown encoding
		"aes-encrypted V 1.2-OCB-B-5-4-U\n",   // bad Nb
		"aes-encrypted V 1.2-OCB-B-4-9-U\n",   // bad Nk
		"aes-encrypted V 1.2-OCB-B-4-4-X\n",   // bad marker
		"aes-encrypted v 1.2-OCB-B-4-4-U\n",   // case matters
		" aes-encrypted V 1.2-OCB-B-4-4-U\n",  // leading junk
		"aes-encrypted V 1x2-OCB-B-4-4-U\n",   // the dot is literal
	}
	for _, s := range bad {
		_, err := Parse([]byte(s))
		assert.Equal(t, ErrBadHeader, err, "input %q", s)
	}
}

func TestHeaderParseFields(t *testing.T) {
	for _, h := range []Header{
		{ModeCBC, Base64, 4, 4, Unibyte},
		{ModeCBC, Raw, 6, 8, Multibyte},
		{ModeOCB, Base64, 4, 6, Unibyte},
	} {
		got, line, body, err := parseHeader(append(h.Marshal(), "payload"...))
		require.NoError(t, err)
		assert.Equal(t, h, got)
		assert.Equal(t, h.Marshal(), line)
		assert.Equal(t, []byte("payload"), body)
	}
}

func sealOpen(t *testing.T, h Header, key, plaintext []byte) []byte {
	t.Helper()

	data, err := Seal(h, key, plaintext, &countingSource{})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, h.Marshal()))

	p, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, h, p.Header)

	plain, err := p.Open(key)
	require.NoError(t, err)
	return plain
}

func TestSealOpenRoundTrip(t *testing.T) {
	plaintext := []byte("The quick brown fox jumps over the lazy dog")
	key16 := bytes.Repeat([]byte{0x42}, 16)
	key32 := bytes.Repeat([]byte{0x24}, 32)

	cases := []struct {
		h   Header
		key []byte
	}{
		{Header{ModeOCB, Base64, 4, 4, Unibyte}, key16},
		{Header{ModeOCB, Raw, 4, 8, Unibyte}, key32},
		{Header{ModeCBC, Base64, 4, 4, Multibyte}, key16},
		{Header{ModeCBC, Raw, 8, 8, Unibyte}, key32},
		{Header{ModeCBC, Base64, 6, 4, Unibyte}, key16},
	}
	for _, tc := range cases {
		plain := sealOpen(t, tc.h, tc.key, plaintext)
		assert.Equal(t, plaintext, plain, "header %+v", tc.h)
	}
}

func TestSealOpenEmptyPlaintext(t *testing.T) {
	key := make([]byte, 16)
	for _, h := range []Header{
		{ModeOCB, Base64, 4, 4, Unibyte},
		{ModeCBC, Base64, 4, 4, Unibyte},
	} {
		plain := sealOpen(t, h, key, nil)
		assert.Len(t, plain, 0, "header %+v", h)
	}
}

// Trailing zero bytes survive the CBC length prefix.
func TestCBCZeroTailSurvives(t *testing.T) {
	key := make([]byte, 16)
	plaintext := append([]byte("data"), 0, 0, 0, 0, 0)
	plain := sealOpen(t, Header{ModeCBC, Raw, 4, 4, Unibyte}, key, plaintext)
	assert.Equal(t, plaintext, plain)
}

func TestOCBRequires128BitBlock(t *testing.T) {
	key := make([]byte, 16)
	for _, nb := range []int{6, 8} {
		_, err := Seal(Header{ModeOCB, Base64, nb, 4, Unibyte}, key, []byte("x"), &countingSource{})
		assert.Equal(t, ErrOCBBlockSize, err, "nb=%d", nb)
	}

	// A hand-built header can claim OCB with a big block; Open must
	// refuse it too.
	data := append([]byte("aes-encrypted V 1.2-OCB-N-8-4-U\n"), make([]byte, 64)...)
	p, err := Parse(data)
	require.NoError(t, err)
	_, err = p.Open(key)
	assert.Equal(t, ErrOCBBlockSize, err)
}

func TestShortPayloads(t *testing.T) {
	key := make([]byte, 16)

	// OCB: anything under iv+tag is truncated.
	data := append([]byte("aes-encrypted V 1.2-OCB-N-4-4-U\n"), make([]byte, 31)...)
	p, err := Parse(data)
	require.NoError(t, err)
	_, err = p.Open(key)
	assert.Equal(t, ErrBadCiphertextLength, err)

	// CBC: payload shorter than one block cannot even hold the IV.
	data = append([]byte("aes-encrypted V 1.2-CBC-N-4-4-U\n"), make([]byte, 15)...)
	p, err = Parse(data)
	require.NoError(t, err)
	_, err = p.Open(key)
	assert.Equal(t, ErrBadCiphertextLength, err)

	// CBC: ciphertext after the IV must be block aligned.
	data = append([]byte("aes-encrypted V 1.2-CBC-N-4-4-U\n"), make([]byte, 16+17)...)
	p, err = Parse(data)
	require.NoError(t, err)
	_, err = p.Open(key)
	assert.Equal(t, ErrBadCiphertextLength, err)
}

func TestBadBase64(t *testing.T) {
	data := []byte("aes-encrypted V 1.2-OCB-B-4-4-U\nnot*base64*at*all")
	_, err := Parse(data)
	assert.Equal(t, ErrBadBase64, err)
}

func TestWrappedBase64Accepted(t *testing.T) {
	key := make([]byte, 16)
	plaintext := bytes.Repeat([]byte("wrap me "), 32)
	data, err := Seal(Header{ModeOCB, Base64, 4, 4, Unibyte}, key, plaintext, &countingSource{})
	require.NoError(t, err)

	h, body := data[:32], data[32:]
	var wrapped bytes.Buffer
	wrapped.Write(h)
	for i := 0; i < len(body); i += 76 {
		end := i + 76
		if end > len(body) {
			end = len(body)
		}
		wrapped.Write(body[i:end])
		wrapped.WriteByte('\n')
	}

	p, err := Parse(wrapped.Bytes())
	require.NoError(t, err)
	plain, err := p.Open(key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, plain)
}

// Flipping any single decoded payload byte of an OCB container must
// fail authentication.
func TestOCBPayloadTamper(t *testing.T) {
	key := make([]byte, 16)
	plaintext := []byte("hello\n")
	h := Header{ModeOCB, Base64, 4, 4, Unibyte}
	data, err := Seal(h, key, plaintext, &countingSource{})
	require.NoError(t, err)

	body := data[len(h.Marshal()):]
	payload, err := base64.StdEncoding.DecodeString(string(body))
	require.NoError(t, err)

	for i := range payload {
		payload[i] ^= 0x01
		tampered := append(h.Marshal(), []byte(base64.StdEncoding.EncodeToString(payload))...)
		p, err := Parse(tampered)
		require.NoError(t, err)
		_, err = p.Open(key)
		assert.Equal(t, ocb2.ErrAuthenticationFailed, err, "byte %d", i)
		payload[i] ^= 0x01
	}
}

// Editing the header of an OCB container invalidates the tag, since
// the header line is the associated data.
func TestOCBHeaderTamper(t *testing.T) {
	key := make([]byte, 16)
	data, err := Seal(Header{ModeOCB, Base64, 4, 4, Unibyte}, key, []byte("secret"), &countingSource{})
	require.NoError(t, err)

	tampered := bytes.Replace(data, []byte("-U\n"), []byte("-M\n"), 1)
	p, err := Parse(tampered)
	require.NoError(t, err)
	_, err = p.Open(key)
	assert.Equal(t, ocb2.ErrAuthenticationFailed, err)
}

func TestLengthPrefixMissing(t *testing.T) {
	// Seal an ordinary CBC container, then open it with a wrong key so
	// the decrypted inner frame does not start with the length prefix.
	src := &countingSource{}
	key := make([]byte, 16)
	h := Header{ModeCBC, Raw, 4, 4, Unibyte}

	data, err := Seal(h, key, []byte("x"), src)
	require.NoError(t, err)
	p, err := Parse(data)
	require.NoError(t, err)

	// Decrypting with the wrong key turns the prefix to noise. With a
	// fixed wrong key this either fails the prefix parse or, with
	// negligible probability, returns garbage; the error identity is
	// what we lock here.
	wrong := bytes.Repeat([]byte{0xff}, 16)
	if _, err := p.Open(wrong); err != nil {
		assert.Equal(t, ErrLengthPrefixMissing, err)
	}
}

// A >1 MiB payload exercises the decimal length prefix well past one
// digit group and the block-chaining loop at scale.
func TestCBCLargePayload(t *testing.T) {
	key := bytes.Repeat([]byte{7}, 16)
	plaintext := bytes.Repeat([]byte{0xab, 0xcd, 0xef}, (1<<20)/3+1024)
	require.True(t, len(plaintext) > 1<<20)

	h := Header{ModeCBC, Raw, 4, 4, Unibyte}
	plain := sealOpen(t, h, key, plaintext)
	assert.Equal(t, plaintext, plain)
}
