package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/lumen-render/lumen/cmd"
)

func main() {
	app := cli.NewApp()
	app.Name = "lumen"
	app.Usage = "render scenes by tracing light particles toward the camera"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render the demonstration scene",
			Description: `
Trace light paths from the scene's emitters, splatting each vertex that
is visible from the camera onto the image plane, then develop the
accumulated samples into a PNG image.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width in pixels",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height in pixels",
				},
				cli.IntFlag{
					Name:  "paths",
					Value: 4000000,
					Usage: "total number of light paths to trace",
				},
				cli.IntFlag{
					Name:  "rr-min-path-length",
					Value: 3,
					Usage: "path length after which russian roulette may terminate paths (0 disables)",
				},
				cli.IntFlag{
					Name:  "max-path-length",
					Value: 8,
					Usage: "maximum light path length (0 for unbounded)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "base random seed; worker i uses seed+i",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers (0 for one per CPU)",
				},
				cli.Float64Flag{
					Name:  "exposure",
					Value: 1.0,
					Usage: "linear exposure applied before gamma correction",
				},
				cli.Float64Flag{
					Name:  "scale",
					Value: 1.0,
					Usage: "rescale factor applied to the developed image",
				},
				cli.StringFlag{
					Name:  "out",
					Value: "frame.png",
					Usage: "output PNG file",
				},
			},
			Action: cmd.RenderFrame,
		},
	}

	app.Run(os.Args)
}
