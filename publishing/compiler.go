package publishing


import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/diem/client-sdk-go/diemtypes"

	"move-emitter/core"
)


// Compile Move modules with the `move-build` tool.
// The module sources refer to their own address as `Owner`, which is
// compiled as the placeholder address of the template.
//
type MoveCompiler struct {
	logger   core.Logger
	command  string
	stdlibs  []string
}

func NewMoveCompiler(logger core.Logger, command string, stdlibs []string) *MoveCompiler {
	if command == "" {
		command = "move-build"
	}

	return &MoveCompiler{
		logger: logger,
		command: command,
		stdlibs: stdlibs,
	}
}

// List the stdlib sources found in `dir`.
//
func ListStdlibs(dir string) ([]string, error) {
	var entries []os.DirEntry
	var entry os.DirEntry
	var ret []string
	var err error

	entries, err = os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	ret = make([]string, 0)
	for _, entry = range entries {
		if strings.HasSuffix(entry.Name(), ".move") {
			ret = append(ret, filepath.Join(dir, entry.Name()))
		}
	}

	return ret, nil
}

func (this *MoveCompiler) arguments(out string, placeholder diemtypes.AccountAddress, paths []string) []string {
	var args []string = make([]string, 0)
	var stdlib string

	args = append(args, "--addresses", "Owner=0x" +
		core.HexAddress(placeholder))
	args = append(args, "--addresses", "Std=0x1")
	for _, stdlib = range this.stdlibs {
		args = append(args, "--dependency", stdlib)
	}
	args = append(args, "--out-dir", out)
	args = append(args, paths...)

	return args
}

func (this *MoveCompiler) CompileModule(path string, placeholder diemtypes.AccountAddress) ([]byte, error) {
	var cmd *exec.Cmd
	var out string
	var code []byte
	var err error

	this.logger.Debugf("compile module '%s'", path)

	out, err = os.MkdirTemp("", "move")
	if err != nil {
		return nil, err
	}

	defer os.RemoveAll(out)

	cmd = exec.Command(this.command, this.arguments(out, placeholder,
		[]string{ path })...)
	cmd.Stderr = os.Stderr

	err = cmd.Run()
	if err != nil {
		return nil, errors.Wrapf(err, "%s '%s'", this.command,
			path)
	}

	code, err = readFileIn(filepath.Join(out, "modules"), ".mv")
	if err != nil {
		return nil, err
	}

	this.logger.Debugf("  module code is %d bytes", len(code))

	return code, nil
}

func readFileIn(path, suffix string) ([]byte, error) {
	var content []byte = nil
	var entries []os.DirEntry
	var entry os.DirEntry
	var err error

	entries, err = os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	for _, entry = range entries {
		if !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}

		if content != nil {
			return nil, errors.Errorf("more than one object in '%s'",
				path)
		}

		content, err = os.ReadFile(filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, err
		}
	}

	if content == nil {
		return nil, errors.Errorf("no '%s' object in '%s'", suffix, path)
	}

	return content, nil
}
