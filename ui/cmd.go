package ui

import (
	"context"
	"evilboard/src/base"
	"evilboard/src/board"
	"evilboard/src/convert/convpos"
	"evilboard/src/editor"
	"evilboard/src/logx"
	clic "evilboard/ui/cli"
	"evilboard/ui/render"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

const logfile string = "evilboard.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

// loadBoard builds the starting position from --pos: a literal position
// string, "@file" to read one, "classic" for the standard setup, or
// empty for a bare board.
func loadBoard(c *cli.Command) (*board.Board, error) {
	pos := strings.TrimSpace(c.String("pos"))
	switch {
	case pos == "":
		return board.New(), nil
	case pos == "classic":
		return convpos.ConvertPositionToBoard(base.POS_CLASSIC_GAME)
	case strings.HasPrefix(pos, "@"):
		data, err := os.ReadFile(pos[1:])
		if err != nil {
			return nil, fmt.Errorf("error read position file: %w", err)
		}
		return convpos.ConvertPositionToBoard(string(data))
	default:
		return convpos.ConvertPositionToBoard(pos)
	}
}

func parseRegion(c *cli.Command) (base.BBox, error) {
	c1, err := base.ParseCoord(c.String("from"))
	if err != nil {
		return base.BBox{}, fmt.Errorf("bad --from: %w", err)
	}
	c2, err := base.ParseCoord(c.String("to"))
	if err != nil {
		return base.BBox{}, fmt.Errorf("bad --to: %w", err)
	}
	return base.NewBBox(c1, c2), nil
}

func RunEvilBoard() error {
	pf := &cli.StringFlag{
		Name:  "pos",
		Usage: "position string, @file, or 'classic'",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	fromf := &cli.StringFlag{
		Name:  "from",
		Usage: "region corner as x,y",
		Value: "1,1",
	}
	tof := &cli.StringFlag{
		Name:  "to",
		Usage: "opposite region corner as x,y",
		Value: "8,8",
	}

	return (&cli.Command{
		Name:  "evilboard",
		Usage: "position editor for the unbounded board",
		Commands: []*cli.Command{
			{
				Name:  "edit",
				Usage: "interactive terminal editor",
				Flags: []cli.Flag{pf, df, lf, cf},
				Action: func(ctx context.Context, c *cli.Command) error {
					file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
					if err != nil {
						fmt.Printf("error open logfile: %v", err)
						return nil
					}
					defer file.Close()

					b, err := loadBoard(c)
					if err != nil {
						fmt.Printf("error load position: %v", err)
						return nil
					}

					session := editor.NewSession(b, nil, GetLogger(file, c))
					defer session.Close()

					clic.EnableANSI()
					ed := clic.NewEditorCLI(session)
					if err := ed.Run(); err != nil {
						fmt.Printf("error evilboard: %v", err)
					}
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "print a region of a position",
				Flags: []cli.Flag{pf, fromf, tof},
				Action: func(ctx context.Context, c *cli.Command) error {
					b, err := loadBoard(c)
					if err != nil {
						fmt.Printf("error load position: %v", err)
						return nil
					}
					box, err := parseRegion(c)
					if err != nil {
						fmt.Println(err)
						return nil
					}
					if !box.Width().IsInt64() || !box.Height().IsInt64() ||
						box.Width().Int64() > 64 || box.Height().Int64() > 64 {
						fmt.Println("region too large to print")
						return nil
					}
					clic.EnableANSI()
					clic.PrintRegion(os.Stdout, b, box)
					return nil
				},
			},
			{
				Name:  "render",
				Usage: "write a region of a position as PNG",
				Flags: []cli.Flag{pf, fromf, tof,
					&cli.StringFlag{
						Name:  "out",
						Usage: "output file",
						Value: "board.png",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					b, err := loadBoard(c)
					if err != nil {
						fmt.Printf("error load position: %v", err)
						return nil
					}
					box, err := parseRegion(c)
					if err != nil {
						fmt.Println(err)
						return nil
					}
					if err := render.RegionPNG(b, box, c.String("out")); err != nil {
						fmt.Printf("error render: %v", err)
						return nil
					}
					fmt.Printf("wrote %s\n", c.String("out"))
					return nil
				},
			},
		},
	}).Run(context.Background(), os.Args)
}
