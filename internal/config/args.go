package config

import "fmt"

// ParseArgs maps the positional arguments
//
//	<input> <output> [chunk-size] [start-offset] [end-offset]
//
// onto Inputs. Missing optional values fall back to defaultChunk and zero.
func ParseArgs(args []string, defaultChunk int64) (Inputs, error) {
	if len(args) < 2 {
		return Inputs{}, fmt.Errorf("%w: need <input> and <output>", ErrInvalidConfig)
	}
	if len(args) > 5 {
		return Inputs{}, fmt.Errorf("%w: too many arguments (%d)", ErrInvalidConfig, len(args))
	}

	in := Inputs{
		Input:     args[0],
		Output:    args[1],
		ChunkSize: defaultChunk,
	}

	fields := []struct {
		name string
		dst  *int64
	}{
		{"chunk-size", &in.ChunkSize},
		{"start-offset", &in.StartOffset},
		{"end-offset", &in.EndOffset},
	}
	for i, f := range fields {
		if len(args) <= i+2 {
			break
		}
		n, err := ParseSize(args[i+2])
		if err != nil {
			return Inputs{}, fmt.Errorf("%w: [%s]: %w", ErrInvalidConfig, f.name, err)
		}
		*f.dst = n
	}

	if in.ChunkSize == 0 {
		return Inputs{}, fmt.Errorf("%w: [chunk-size] can not be zero", ErrInvalidConfig)
	}
	return in, nil
}
