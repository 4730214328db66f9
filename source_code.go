package uritemplate

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"strings"
)

type sourceCode struct {
	identity string
	code     string
}

func newSourceCode(code string) *sourceCode {
	return &sourceCode{code: code, identity: abstract([]byte(code))}
}

func newSourceCodeFile(path string) (*sourceCode, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &sourceCode{code: string(bs), identity: path}, nil
}

// trimTemplateFile drops the trailing newline an editor leaves at the
// end of a .tpl file; it would otherwise become literal output.
func trimTemplateFile(code string) string {
	return strings.TrimRight(code, "\r\n")
}

func abstract(content []byte) string {
	encryptor := sha1.New()
	encryptor.Write(content)

	return hex.EncodeToString(encryptor.Sum(nil))
}
