package publishing


import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"move-emitter/core"
)


const manifestName = "package.yaml"


type manifestFunction struct {
	Name  string   `yaml:"name"`
	Args  []string `yaml:"args"`
}

type manifest struct {
	Name           string             `yaml:"name"`
	Module         string             `yaml:"module"`
	Code           string             `yaml:"code"`
	Source         string             `yaml:"source"`
	Placeholder    string             `yaml:"placeholder"`
	VersionMarker  string             `yaml:"version-marker"`
	Functions      []manifestFunction `yaml:"functions"`
}


// Load the package templates of every sub-directory of `base` holding a
// package manifest.
// Packages given as sources need a `compiler`; it may be nil when all the
// packages come precompiled.
//
func LoadPackages(base string, compiler *MoveCompiler, logger core.Logger) ([]*PackageTemplate, error) {
	var ret []*PackageTemplate = make([]*PackageTemplate, 0)
	var template *PackageTemplate
	var entries []os.DirEntry
	var entry os.DirEntry
	var path string
	var err error

	entries, err = os.ReadDir(base)
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func (i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry = range entries {
		if !entry.IsDir() {
			continue
		}

		path = filepath.Join(base, entry.Name())

		_, err = os.Stat(filepath.Join(path, manifestName))
		if os.IsNotExist(err) {
			logger.Debugf("skip '%s': no %s", path, manifestName)
			continue
		}

		template, err = LoadPackage(path, compiler)
		if err != nil {
			return nil, err
		}

		logger.Debugf("load package '%s' from '%s' (%d bytes, %d " +
			"functions)", template.Name, path, len(template.Code),
			len(template.Functions))

		ret = append(ret, template)
	}

	return ret, nil
}

func LoadPackage(dir string, compiler *MoveCompiler) (*PackageTemplate, error) {
	var path string = filepath.Join(dir, manifestName)
	var content []byte
	var man manifest
	var err error

	content, err = os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(content, &man)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return man.template(dir, compiler)
}

func (this *manifest) template(dir string, compiler *MoveCompiler) (*PackageTemplate, error) {
	var ret PackageTemplate
	var fun manifestFunction
	var shapes []ArgShape
	var arg string
	var err error

	ret.Name = this.Name
	ret.Module = this.Module

	ret.Placeholder, err = core.ParseHexAddress(this.Placeholder)
	if err != nil {
		return nil, errors.Wrapf(err, "package '%s': invalid " +
			"placeholder", this.Name)
	}

	if this.VersionMarker != "" {
		ret.VersionMarker, err = hex.DecodeString(
			strings.TrimPrefix(this.VersionMarker, "0x"))
		if err != nil {
			return nil, errors.Wrapf(err, "package '%s': invalid " +
				"version marker", this.Name)
		}
	}

	if this.Code != "" {
		ret.Code, err = os.ReadFile(filepath.Join(dir, this.Code))
	} else if this.Source == "" {
		err = errors.New("neither code nor source")
	} else if compiler == nil {
		err = errors.Errorf("source '%s' given without compiler",
			this.Source)
	} else {
		ret.Code, err = compiler.CompileModule(
			filepath.Join(dir, this.Source), ret.Placeholder)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "package '%s'", this.Name)
	}

	ret.Functions = make([]EntryFunction, 0, len(this.Functions))
	for _, fun = range this.Functions {
		shapes = make([]ArgShape, 0, len(fun.Args))
		for _, arg = range fun.Args {
			shapes = append(shapes, ArgShape(arg))
		}

		ret.Functions = append(ret.Functions, EntryFunction{
			Name: fun.Name,
			Args: shapes,
		})
	}

	err = ret.Validate()
	if err != nil {
		return nil, err
	}

	return &ret, nil
}
