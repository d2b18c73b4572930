package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/PassTheMayo/asciify/internal/asciify"
	"github.com/PassTheMayo/asciify/internal/imageio"
	"github.com/PassTheMayo/asciify/internal/render"
	"github.com/jessevdk/go-flags"
)

var ErrNoInput = errors.New("missing input image argument")

type Options struct {
	Verbose   bool    `short:"V" long:"verbose" description:"Prints additional debug information"`
	Output    string  `short:"o" long:"out" description:"The file to write the output to"`
	Resize    string  `short:"r" long:"resize" description:"Resize the image to specific dimensions (WxH)"`
	Scale     float64 `short:"s" long:"scale" description:"Scales image and preserves aspect ratio" default:"0"`
	Charset   string  `short:"c" long:"charset" description:"The character set to use for the output" default:"bourke"`
	Gradient  string  `short:"g" long:"gradient" description:"Custom gradient, darkest glyph first; overrides --charset"`
	Invert    bool    `short:"i" long:"invert" description:"Reverses the direction of the gradient"`
	Normalize bool    `short:"n" long:"normalize" description:"Stretches the image's own brightness range over the gradient"`
	Workers   int     `short:"j" long:"workers" description:"Number of goroutines used to map pixels" default:"1"`
}

var stderr io.Writer = os.Stderr

func (opts *Options) verbosef(format string, args ...interface{}) {
	if opts.Verbose {
		fmt.Fprintf(stderr, "VERBOSE: "+format+"\n", args...)
	}
}

func (opts *Options) gradient() (asciify.Gradient, error) {
	var (
		g   asciify.Gradient
		err error
	)

	if len(opts.Gradient) > 0 {
		g, err = asciify.NewGradient(opts.Gradient)
	} else {
		g, err = asciify.Charset(opts.Charset)
	}

	if err != nil {
		return nil, err
	}

	if opts.Invert {
		g = g.Reverse()
	}

	return g, nil
}

func run(opts *Options, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) < 1 {
		answers, err := prompt(stdin, stdout)

		if err != nil {
			return fmt.Errorf("%w: %s", ErrNoInput, err)
		}

		opts.Resize = fmt.Sprintf("%dx%d", answers.Width, answers.Height)
		opts.Normalize = answers.Scaled
		args = []string{answers.Path}
	}

	gradient, err := opts.gradient()

	if err != nil {
		return err
	}

	opts.verbosef("Using gradient %q (%d characters)", gradient.String(), len(gradient))

	img, format, err := imageio.Open(args[0])

	if err != nil {
		return err
	}

	opts.verbosef("Opened %s image '%s'", format, args[0])

	ow, oh, err := imageio.Dimensions(opts.Resize, opts.Scale, img)

	if err != nil {
		return err
	}

	processedImg := imageio.Resize(img, ow, oh)

	opts.verbosef("Resized image from %s to %s", img.Bounds().Size(), processedImg.Bounds().Size())

	mapper := asciify.NewMapper(gradient, opts.Normalize)
	mapper.Workers = opts.Workers

	glyphs, err := mapper.Convert(imageio.Pixels(processedImg), ow, oh)

	if err != nil {
		return err
	}

	if len(opts.Output) < 1 {
		return render.Write(stdout, glyphs, ow)
	}

	f, err := os.Create(opts.Output)

	if err != nil {
		return err
	}

	if err = render.Write(f, glyphs, ow); err != nil {
		f.Close()

		return err
	}

	if err = f.Close(); err != nil {
		return err
	}

	opts.verbosef("Successfully wrote output to '%s'", opts.Output)

	return nil
}

func main() {
	opts := &Options{}

	args, err := flags.Parse(opts)

	if err != nil {
		if flags.WroteHelp(err) {
			return
		}

		panic(err)
	}

	if err = run(opts, args, os.Stdin, os.Stdout); err != nil {
		panic(err)
	}
}
