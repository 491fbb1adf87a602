package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/shp2kml/internal/config"
	"github.com/woozymasta/shp2kml/internal/logger"
	"github.com/woozymasta/shp2kml/internal/processor"
	"github.com/woozymasta/shp2kml/internal/shapefile"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	InputPath        string `short:"i" long:"input_path"        env:"INPUT_PATH"        description:"Input path to shapefile directory" required:"true"`
	OutputPath       string `short:"o" long:"output_path"       env:"OUTPUT_PATH"       description:"Output path for KML files"         required:"true"`
	NameField        string `short:"n" long:"name_field"        env:"NAME_FIELD"        description:"Field name for name in input .shp" default:"id"`
	DescriptionField string `short:"d" long:"description_field" env:"DESCRIPTION_FIELD" description:"Field name for description in input .shp" default:"JOORA"`
	ConfigFile       string `short:"c" long:"config"            env:"CONFIG_FILE"       description:"Path to field fallback configuration file"`
	Minify           bool   `short:"m" long:"minify"            description:"Minify produced KML output"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg := loadConfig(opts.ConfigFile)

	if err := os.MkdirAll(opts.OutputPath, 0755); err != nil {
		log.Fatal().Err(err).Str("path", opts.OutputPath).Msg("Failed to create output directory")
	}

	files, problems, err := shapefile.Scan(opts.InputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.InputPath).Msg("Failed to scan input directory")
	}

	// Incomplete datasets block the whole run before anything is converted
	if len(problems) > 0 {
		for _, problem := range problems {
			log.Error().Msg(problem)
		}
		log.Fatal().Int("incomplete", len(problems)).Msg("Shapefile validation failed")
	}

	if len(files) == 0 {
		reportEmptyInput(opts.InputPath)
		os.Exit(1)
	}

	log.Info().
		Int("files", len(files)).
		Str("name_field", opts.NameField).
		Str("description_field", opts.DescriptionField).
		Msg("Starting conversion")
	for _, file := range files {
		log.Info().Str("file", filepath.Base(file)).Msg("Queued")
	}

	conv := processor.New(processor.Options{
		OutputDir: opts.OutputPath,
		Minify:    opts.Minify,
	})

	for _, file := range files {
		written, err := process(conv, cfg, file, opts.NameField, opts.DescriptionField)
		if err != nil {
			log.Error().Err(err).Str("file", filepath.Base(file)).Msg("Failed to process shapefile")
			log.Fatal().Msg("Check that your shapefile contains valid geometry and required fields")
		}

		log.Info().
			Str("file", filepath.Base(file)).
			Int("kml_written", written).
			Msg("Converted to KML")
	}

	log.Info().Msg("Done")
}

// process converts a single dataset: load, resolve fields, translate.
func process(conv *processor.Converter, cfg *config.Config, path, nameField, descField string) (int, error) {
	table, err := shapefile.Load(path)
	if err != nil {
		return 0, err
	}

	log.Debug().
		Str("file", filepath.Base(path)).
		Strs("fields", table.Fields).
		Int("rows", len(table.Rows)).
		Msg("Loaded feature table")

	fields, err := processor.ResolveFields(table.Fields, nameField, descField, cfg)
	if err != nil {
		return 0, err
	}

	return conv.Convert(table, fields)
}

// loadConfig reads the fallback configuration. Without an explicit flag the
// default path is optional, an explicitly given file must exist.
func loadConfig(path string) *config.Config {
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config.Default()
		}
		log.Fatal().Err(err).Str("path", path).Msg("Failed to load configuration")
	}

	return cfg
}

// reportEmptyInput explains why nothing qualified for conversion.
func reportEmptyInput(inputPath string) {
	log.Error().Msg("No valid shapefiles found in the input directory")

	names, err := shapefile.ListAll(inputPath)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list input directory")
		return
	}

	shpCount := 0
	for _, name := range names {
		log.Info().Str("file", name).Msg("Found in input directory")
		if strings.EqualFold(filepath.Ext(name), ".shp") {
			shpCount++
		}
	}

	if shpCount > 0 {
		log.Error().
			Int("shp_files", shpCount).
			Msg("Found .shp files missing required components, a complete shapefile requires .shp, .shx and .dbf with the same base name")
	} else {
		log.Error().Msg("No .shp files found, ensure the input directory contains shapefile (.shp) datasets")
	}
}
