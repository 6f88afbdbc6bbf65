// Command figcanvas draws regular-polygon figures and prints the canvas.
//
//	figcanvas [flags] kind[:x0,y0,x1,y1[:start[:extent]]] ...
//
// Kinds are square, triangle, cross, circle and <N>gon with N >= 2.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"figcanvas/internal/figure"
	"figcanvas/internal/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("figcanvas", flag.ContinueOnError)
	var (
		format  = fs.String("format", "braille", "output: braille, table, wkt, geojson or png")
		output  = fs.String("o", "", "output file (default stdout; required for png)")
		width   = fs.Int("width", 60, "canvas width (cells for braille, pixels for png)")
		height  = fs.Int("height", 20, "canvas height (cells for braille, pixels for png)")
		load    = fs.String("load", "", "preload shapes from a .geojson or .wkt file")
		lineW   = fs.Float64("line", 1, "outline width")
		verbose = fs.Bool("v", false, "log to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	specs := fs.Args()
	if len(specs) == 0 && *load == "" {
		specs = []string{"square"}
	}

	var c render.Canvas
	if *load != "" {
		if _, err := c.LoadPath(*load, figure.OutlineOf(figure.Ngon)); err != nil {
			return err
		}
	}
	for _, s := range specs {
		f, err := figure.Parse(s)
		if err != nil {
			return err
		}
		f.Width = *lineW
		if err := drawFigure(&c, f); err != nil {
			return err
		}
	}
	c.UpdateScrollRegion()

	if *format == "png" {
		if *output == "" {
			return errors.New("png output needs -o")
		}
		return c.SavePNG(*output, *width, *height)
	}

	if *output == "" {
		return write(stdout, &c, *format, *width, *height)
	}
	fh, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := write(fh, &c, *format, *width, *height); err != nil {
		return errors.Join(err, fh.Close())
	}
	return fh.Close()
}

// drawFigure adds every shape of f. Degenerate shapes are skipped (and
// logged by the canvas); other failures stop the run.
func drawFigure(c *render.Canvas, f figure.Figure) error {
	shapes, err := f.Shapes()
	if err != nil {
		return err
	}
	for _, s := range shapes {
		if _, err := c.CreatePolygon(s.Coords, s.Outline, s.Width); err != nil {
			render.Logger().Debug("shape skipped", slog.String("figure", string(f.Kind)), slog.Any("err", err))
		}
	}
	return nil
}

func write(w io.Writer, c *render.Canvas, format string, width, height int) error {
	var err error
	switch format {
	case "braille":
		_, err = fmt.Fprintln(w, c.View(width, height))
	case "table":
		_, err = fmt.Fprintln(w, c.Header()+"\n"+c.VertexTable())
	case "wkt":
		_, err = fmt.Fprintln(w, c.WKT())
	case "geojson":
		err = c.WriteGeoJSON(w)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	return err
}
