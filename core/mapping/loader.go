package mapping

import (
	"os"

	"go.uber.org/zap"
)

// Loader resolves the field mapping from the builtin defaults and up to two
// override files: an environment-local file and a user-specified file.
type Loader struct {
	log *zap.Logger
}

// NewLoader creates a Loader that reports which layers were applied.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// Resolve builds the layers and folds them.
// Override files that cannot be opened are skipped; a file that opens but
// does not parse is a fatal error. Empty paths are not consulted.
func (l *Loader) Resolve(envLocalPath, userPath string) (Resolved, error) {
	layers := []Layer{Builtin()}

	if envLocalPath != "" {
		layer, ok, err := l.loadFile(envLocalPath)
		if err != nil {
			return Resolved{}, err
		}
		if ok {
			layers = append(layers, layer)
			l.log.Info("Loaded default config file", zap.String("path", envLocalPath))
		} else {
			l.log.Info("No default config file available", zap.String("path", envLocalPath))
		}
	}

	if userPath != "" {
		layer, ok, err := l.loadFile(userPath)
		if err != nil {
			return Resolved{}, err
		}
		if ok {
			layers = append(layers, layer)
			l.log.Info("Loaded config file", zap.String("path", userPath))
		} else {
			l.log.Error("Unable to access specified config file, using default values", zap.String("path", userPath))
		}
	}

	resolved, err := Resolve(layers...)
	if err != nil {
		return Resolved{}, err
	}

	l.log.Debug("Resolved field mapping",
		zap.Any("registrants", resolved.Registrants),
		zap.Any("attendees", resolved.Attendees),
	)

	return resolved, nil
}

func (l *Loader) loadFile(path string) (Layer, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		l.log.Debug("Config file not accessible", zap.String("path", path), zap.Error(err))
		return Layer{}, false, nil
	}
	defer f.Close()

	layer, err := ParseLayer(path, f)
	if err != nil {
		return Layer{}, false, err
	}
	return layer, true, nil
}
