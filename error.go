package morph

import "fmt"

// OpenError wraps a failure encountered while constructing a Tokenizer:
// locating mecabrc, or opening one of the five dictionary files.
type OpenError struct {
	Stage string // "config", "sys.dic", "user.dic", "unk.dic", "char.bin", "matrix.bin"
	Err   error
}

func (err *OpenError) Error() string {
	return fmt.Sprintf("morph: opening %s: %v", err.Stage, err.Err)
}

func (err *OpenError) Unwrap() error {
	return err.Err
}
