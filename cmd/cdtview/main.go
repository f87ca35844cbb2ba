// Package main is the cdtview command. It triangulates a simple polygon given
// on the command line or in a JSON file and prints or renders the result.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.viam.com/utils"

	"github.com/viam-labs/cdt/render"
	"github.com/viam-labs/cdt/triangulate"
)

const (
	flagPoints  = "points"
	flagFile    = "file"
	flagSteiner = "steiner"
	flagOut     = "out"
	flagWidth   = "width"
	flagHeight  = "height"
	flagJSON    = "json"
	flagDebug   = "debug"
)

func main() {
	var logger golog.Logger

	app := &cli.App{
		Name:  "cdtview",
		Usage: "triangulate a simple polygon and inspect the result",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagPoints,
				Usage: "boundary vertices in order, as \"x,y x,y x,y ...\"",
			},
			&cli.PathFlag{
				Name:  flagFile,
				Usage: "JSON `FILE` holding the boundary as [[x,y],...]",
			},
			&cli.StringFlag{
				Name:  flagSteiner,
				Usage: "extra interior vertices, as \"x,y x,y ...\"",
			},
			&cli.PathFlag{
				Name:  flagOut,
				Usage: "write a PNG of the triangulation to `FILE`",
			},
			&cli.IntFlag{
				Name:  flagWidth,
				Value: 800,
				Usage: "PNG width in pixels",
			},
			&cli.IntFlag{
				Name:  flagHeight,
				Value: 800,
				Usage: "PNG height in pixels",
			},
			&cli.BoolFlag{
				Name:  flagJSON,
				Usage: "print the triangles as JSON",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = golog.NewDebugLogger("cdtview")
			} else {
				logger = zap.NewNop().Sugar()
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			boundary, err := boundaryFromFlags(c)
			if err != nil {
				return err
			}

			tr, err := triangulate.NewTriangulator(boundary, &triangulate.Options{Logger: logger})
			if err != nil {
				return err
			}
			if steinerStr := c.String(flagSteiner); steinerStr != "" {
				steiner, err := parsePoints(steinerStr)
				if err != nil {
					return err
				}
				for _, p := range steiner {
					if err := tr.AddSteinerPoint(p); err != nil {
						return err
					}
				}
			}

			mesh, err := tr.Triangulate()
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "vertices: %d\ntriangles: %d\narea: %g\n",
				len(boundary), len(mesh.Triangles()), mesh.Area())

			if c.Bool(flagJSON) {
				if err := writeJSON(c.App.Writer, mesh); err != nil {
					return err
				}
			}
			if out := c.Path(flagOut); out != "" {
				style := &render.Style{Width: c.Int(flagWidth), Height: c.Int(flagHeight)}
				if err := render.SavePNG(out, mesh, style); err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "wrote %s\n", out)
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func boundaryFromFlags(c *cli.Context) ([]r2.Point, error) {
	pointsStr := c.String(flagPoints)
	file := c.Path(flagFile)
	switch {
	case pointsStr != "" && file != "":
		return nil, errors.New("use either --points or --file, not both")
	case pointsStr != "":
		return parsePoints(pointsStr)
	case file != "":
		return readPointsFile(file)
	}
	return nil, errors.New("no boundary given; use --points or --file")
}

// parsePoints reads "x,y x,y ..." into points.
func parsePoints(s string) ([]r2.Point, error) {
	fields := strings.Fields(s)
	pts := make([]r2.Point, 0, len(fields))
	for _, f := range fields {
		xy := strings.Split(f, ",")
		if len(xy) != 2 {
			return nil, errors.Errorf("bad vertex %q; want x,y", f)
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad vertex %q", f)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad vertex %q", f)
		}
		pts = append(pts, r2.Point{X: x, Y: y})
	}
	return pts, nil
}

func readPointsFile(path string) ([]r2.Point, error) {
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "error opening points file")
	}
	defer utils.UncheckedErrorFunc(f.Close)
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading points file")
	}
	var pairs [][]float64
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, errors.Wrap(err, "error parsing points file")
	}
	pts := make([]r2.Point, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, errors.Errorf("vertex %d has %d coordinates; want 2", i, len(pair))
		}
		pts = append(pts, r2.Point{X: pair[0], Y: pair[1]})
	}
	return pts, nil
}

func writeJSON(w io.Writer, mesh *triangulate.Mesh) error {
	tris := mesh.Triangles()
	out := make([][][2]float64, 0, len(tris))
	for _, t := range tris {
		pts := t.Points()
		out = append(out, [][2]float64{
			{pts[0].X, pts[0].Y},
			{pts[1].X, pts[1].Y},
			{pts[2].X, pts[2].Y},
		})
	}
	enc := json.NewEncoder(w)
	return enc.Encode(out)
}
