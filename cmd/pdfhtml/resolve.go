package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"pdfhtml/config"
	"pdfhtml/document"
	"pdfhtml/resolve"
	"pdfhtml/resource"
	"pdfhtml/state"
)

// output is what resolve command writes.
type output struct {
	Source          string `yaml:"source"`
	document.Result `yaml:",inline"`
	Diagnostics     []resolve.DiagnosticCount `yaml:"diagnostics,omitempty"`
}

func resolveDocument(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no source file specified")
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	src := cmd.Args().Get(0)

	env.Overwrite = cmd.Bool("overwrite")
	env.Format = env.Cfg.Output.Format
	if to := cmd.String("to"); len(to) > 0 {
		if env.Format, err = config.ParseOutputFmt(to); err != nil {
			return fmt.Errorf("unable to use requested output format: %w", err)
		}
	}

	dst, err := destination(env, src, cmd.Args().Get(1))
	if err != nil {
		return err
	}
	if !env.Overwrite {
		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("destination file '%s' already exists", dst)
		}
	}

	if path := env.Cfg.Document.StylesheetPath; len(path) > 0 {
		if env.DefaultStyle, err = os.ReadFile(path); err != nil {
			return fmt.Errorf("unable to read stylesheet: %w", err)
		}
		env.Rpt.Store("stylesheet.css", path)
	}
	if err := env.Rpt.StoreCopy("source", src); err != nil {
		env.Log.Warn("Unable to store source in debug report", zap.Error(err))
	}

	doc, err := document.LoadFile(src)
	if err != nil {
		return err
	}

	base := env.Cfg.Document.ResourceBaseDir
	if len(base) == 0 {
		base = filepath.Dir(src)
	}
	opts := document.Options{
		DefaultFontSize: env.Cfg.Document.DefaultFontSize,
		RootFontSize:    env.Cfg.Document.RootFontSize,
		PageWidth:       env.Cfg.Document.PageWidth,
	}
	if env.Cfg.Document.LinkedStylesheets {
		opts.Fetch = document.FileFetcher(base)
	}
	if len(env.DefaultStyle) > 0 {
		opts.Stylesheets = append(opts.Stylesheets, env.DefaultStyle)
	}

	images := resource.NewLoader(env.Log, resource.WithBaseDir(base), resource.WithDataURI(env.Cfg.Document.DataURI))
	res, err := document.New(env.Log, resolve.New(env.Log, images), opts).Process(ctx, doc)
	if err != nil {
		return fmt.Errorf("unable to resolve '%s': %w", src, err)
	}
	if res.Err != nil {
		env.Log.Warn("Some elements were not resolved", zap.Error(res.Err))
	}

	out := output{Source: src, Result: *res}
	if env.Cfg.Output.Diagnostics {
		out.Diagnostics = env.Diag.Summary()
	}
	data, err := encode(env.Format, &out)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	env.Rpt.Store("result"+env.Format.Ext(), dst)

	for _, c := range env.Diag.Summary() {
		env.Log.Info("Diagnostics", zap.Stringer("entry", c))
	}
	env.Log.Info("Resolution completed", zap.String("destination", dst),
		zap.Int("elements", len(res.Nodes)), zap.Int("diagnostics", env.Diag.Total()))
	return nil
}

// destination returns output file name. When dst is empty or an existing
// directory name is produced from the configured template.
func destination(env *state.LocalEnv, src, dst string) (string, error) {
	if len(dst) > 0 {
		if fi, err := os.Stat(dst); err != nil || !fi.IsDir() {
			return dst, nil
		}
	}
	name, err := env.Cfg.Output.FileName(src, env.Format)
	if err != nil {
		return "", err
	}
	return filepath.Join(dst, name), nil
}

// encode marshals result to YAML. JSON is produced from the same YAML tree
// so both formats share field names.
func encode(format config.OutputFmt, out *output) ([]byte, error) {
	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal result: %w", err)
	}
	if format == config.OutputFmtYaml {
		return data, nil
	}
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("unable to convert result: %w", err)
	}
	if data, err = json.MarshalIndent(tree, "", "  "); err != nil {
		return nil, fmt.Errorf("unable to marshal result: %w", err)
	}
	return data, nil
}
