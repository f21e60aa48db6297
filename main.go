package main

import (
	"flag"
	"fmt"
	"go/token"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/m4gshm/fieldset/command"
	"github.com/m4gshm/fieldset/generator"
	"github.com/m4gshm/fieldset/logger"
	"github.com/m4gshm/fieldset/model/fieldset"
	"github.com/m4gshm/fieldset/model/util"
	"github.com/m4gshm/fieldset/params"
)

func usage() {
	out := flag.CommandLine.Output()
	_, _ = fmt.Fprintf(out, "Usage of "+params.Name+":\n")
	_, _ = fmt.Fprintf(out, "\t"+params.Name+" [flags] [command [command flags]]... [directory]\n")
	_, _ = fmt.Fprintf(out, "\twithout -type and commands the %s comments of the package files are executed\n", "//"+params.CommentConfigPrefix)
	_, _ = fmt.Fprintf(out, "Flags:\n")
	flag.PrintDefaults()
	command.PrintUsage()
}

func main() {
	log.SetPrefix(params.Name + ": ")
	log.SetFlags(0)

	config := params.NewConfig(flag.CommandLine)
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	if *debug {
		logger.Init(true)
	}
	err := run(config, flag.Args(), commandLine(os.Args[1:]))
	logger.Sync()
	if err != nil {
		log.Fatal(err)
	}
}

func run(config *params.Config, args []string, cmd string) error {
	dir := "."
	if d := outDir(args); len(d) > 0 {
		dir, args = d, args[:len(args)-1]
	}

	fileSet := token.NewFileSet()
	pkg, err := util.LoadPackage(fileSet, *config.BuildTags, dir)
	if err != nil {
		return errors.Wrap(err, "load package")
	} else if len(pkg.Syntax) == 0 {
		return errors.Errorf("no src files in package %s", pkg.Name)
	}
	pkgDir := filepath.Dir(fileSet.File(pkg.Syntax[0].Pos()).Name())
	logger.Debugw("using", "config", config, "package", pkg.PkgPath, "dir", pkgDir)

	source := &fieldset.Source{FileSet: fileSet, Files: pkg.Syntax, Pkg: pkg.Types, Info: pkg.TypesInfo}
	outputs := generator.NewFiles(cmd, pkg.Name, config.TemplateTag())
	context := command.NewContext(config, source, pkgDir, outputs)

	if len(args) > 0 || len(*config.Type) > 0 {
		err = command.RunArgs(context, args)
	} else {
		var directives []command.Directive
		if directives, err = command.Directives(pkg.Syntax); err == nil {
			if len(directives) == 0 {
				log.Printf("no %s directives in package %s", "//"+params.CommentConfigPrefix, pkg.Name)
				return nil
			}
			err = command.RunDirectives(context, directives)
		}
	}
	if err != nil {
		return err
	}
	return outputs.Write()
}

func commandLine(args []string) string {
	return strings.TrimSpace(params.Name + " " + strings.Join(args, " "))
}

func outDir(args []string) string {
	if len(args) > 0 && isDir(args[len(args)-1]) {
		return args[len(args)-1]
	}
	return ""
}

func isDir(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.IsDir()
}
