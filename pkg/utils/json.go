package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PrettyJson formata um valor como JSON indentado, usado apenas em logs de
// depuração.
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = json.Marshal(in)
		if err != nil {
			return fmt.Sprintf("%v", in)
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		return string(buffer)
	}

	return out.String()
}
