// Package charset decodes label syntax and dataset headers whose character
// encoding is not declared.
//
// Files exported by survey tools and statistical packages arrive either as
// UTF-8 or as ISO-8859-1. Decode tries UTF-8 first and falls back to
// Latin-1, reporting which one was used. Input that decodes to something
// that is clearly not text (for example a binary .sav uploaded in place of
// a .sps) is rejected with ErrUndecodable.
package charset
