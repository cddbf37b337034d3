package circuit

import (
	"fmt"
	"io"
	"strconv"
)

// ToText writes c in the custom line-based format ParseText accepts,
// one operation per line, so serialization and parsing round-trip
// (spec property 9).
func ToText(w io.Writer, c *Circuit) error {
	for _, op := range c.Ops {
		line, err := textLine(op)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func textLine(op Operation) (string, error) {
	switch {
	case op.Kind == MEASURE:
		return "MEASURE ALL", nil
	case op.Kind == CNOT:
		return fmt.Sprintf("CNOT %d %d", op.Control(), op.Target()), nil
	case op.Kind.IsRotation():
		return fmt.Sprintf("%s %d %s", op.Kind, op.Target(), strconv.FormatFloat(op.Angle, 'g', -1, 64)), nil
	case op.Kind.IsNoise():
		return fmt.Sprintf("%s %d %s", op.Kind, op.Target(), strconv.FormatFloat(op.Angle, 'g', -1, 64)), nil
	case op.Kind.IsSingleQubitUnitary():
		return fmt.Sprintf("%s %d", op.Kind, op.Target()), nil
	default:
		return "", fmt.Errorf("circuit: unknown operation kind %q", op.Kind)
	}
}
