package console

import (
	"fmt"
	"strconv"
	"strings"
)

func (m *Menu) promptLine(label string) string {
	fmt.Print(colorize(label, colorYellow))
	line, err := m.reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (m *Menu) promptInt(label string) int {
	value, err := strconv.Atoi(m.promptLine(label))
	if err != nil {
		return 0
	}
	return value
}

func (m *Menu) promptInt64(label string) int64 {
	value, err := strconv.ParseInt(m.promptLine(label), 10, 64)
	if err != nil {
		return 0
	}
	return value
}

func (m *Menu) promptBool(label string) bool {
	return m.promptLine(label) == "1"
}
