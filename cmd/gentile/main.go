package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/bacalhaubyte/gentile"
	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"
)

const defaultDB = "gentile.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) (*gentile.Converter, *gentile.AssetDB, error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	db, err := gentile.NewAssetDB(c.String("db"))
	if err != nil {
		return nil, nil, err
	}

	return gentile.New(db, logger), db, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "gentile"
	app.Usage = "Sega Genesis tile graphics converter"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"GENTILE_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "encode",
			Usage:       "Convert an image to Genesis assembly source",
			Description: "Quantizes IMAGE to a 16 color Genesis palette and writes the palette and 8x8 tile data to ASM.",
			ArgsUsage:   "IMAGE ASM",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				g, db, err := newConverter(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				if err := g.Encode(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "decode",
			Usage:       "Convert Genesis assembly source back to a BMP image",
			Description: "Parses the palette and tile data in ASM and writes a 4-bit indexed bitmap to BMP. Without explicit dimensions the tile grid is looked up in the database.",
			ArgsUsage:   "ASM BMP",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "width",
					Aliases: []string{"x"},
					Usage:   "image width in tiles",
				},
				&cli.IntFlag{
					Name:    "height",
					Aliases: []string{"y"},
					Usage:   "image height in tiles",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				g, db, err := newConverter(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				if err := g.Decode(c.Args().Get(0), c.Args().Get(1), c.Int("width"), c.Int("height")); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
