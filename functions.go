package configdata

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// buildContext returns the evaluation context used when decoding a loader
// configuration file
func buildContext(filePath string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: loaderFunctions(filePath),
		Variables: map[string]cty.Value{},
	}
}

func loaderFunctions(filePath string) map[string]function.Function {
	var EnvFunc = function.New(&function.Spec{
		Params: []function.Parameter{
			{
				Name:             "env",
				Type:             cty.String,
				AllowDynamicType: true,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return cty.StringVal(os.Getenv(args[0].AsString())), nil
		},
	})

	var HomeFunc = function.New(&function.Spec{
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			h, _ := os.UserHomeDir()
			return cty.StringVal(h), nil
		},
	})

	var FileDirFunc = function.New(&function.Spec{
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			abs, err := filepath.Abs(filePath)
			if err != nil {
				return cty.StringVal(""), err
			}

			return cty.StringVal(filepath.ToSlash(filepath.Dir(abs))), nil
		},
	})

	return map[string]function.Function{
		"env":      EnvFunc,
		"home":     HomeFunc,
		"file_dir": FileDirFunc,
	}
}

// ensureAbsolute returns path as an absolute path, relative paths are
// resolved against the folder containing file
func ensureAbsolute(path, file string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	file, _ = filepath.Abs(file)

	return filepath.Clean(filepath.Join(filepath.Dir(file), path))
}
