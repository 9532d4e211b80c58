package charset

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names the character encoding a Text was decoded from.
type Encoding string

const (
	EncodingUTF8   Encoding = "utf-8"
	EncodingLatin1 Encoding = "latin-1"
)

// ErrUndecodable is returned when the bytes are not text in any supported encoding.
var ErrUndecodable = errors.New("input is not decodable as UTF-8 or Latin-1 text")

// maxControlRatio is the share of control characters above which decoded
// input is treated as binary.
const maxControlRatio = 0.05

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Text is decoded input together with the encoding that produced it.
type Text struct {
	Content  string   `json:"-"`
	Encoding Encoding `json:"encoding"`
}

// Decode converts raw bytes to a string, trying UTF-8 and then Latin-1.
func Decode(data []byte) (Text, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if utf8.Valid(data) {
		content := string(data)
		if err := checkPlausible(content); err != nil {
			return Text{}, fmt.Errorf("%w: %s", ErrUndecodable, err.Error())
		}

		return Text{Content: content, Encoding: EncodingUTF8}, nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return Text{}, fmt.Errorf("%w: latin-1: %s", ErrUndecodable, err.Error())
	}

	content := string(decoded)
	if err := checkPlausible(content); err != nil {
		return Text{}, fmt.Errorf("%w: %s", ErrUndecodable, err.Error())
	}

	return Text{Content: content, Encoding: EncodingLatin1}, nil
}

// DecodeString is Decode for callers that only need the content.
func DecodeString(data []byte) (string, error) {
	text, err := Decode(data)
	if err != nil {
		return "", err
	}

	return text.Content, nil
}

// checkPlausible rejects content that looks like a binary file.
func checkPlausible(s string) error {
	if s == "" {
		return nil
	}

	var total, control int

	for _, r := range s {
		total++

		switch {
		case r == 0:
			return errors.New("contains NUL bytes")
		case r == '\t' || r == '\n' || r == '\r' || r == '\f':
		case r < 0x20 || (r >= 0x7F && r < 0xA0):
			control++
		}
	}

	if float64(control)/float64(total) > maxControlRatio {
		return fmt.Errorf("%d of %d characters are control characters", control, total)
	}

	return nil
}
