package slog

import (
	"io"
	"log/slog"
	"os"

	"github.com/argbind/argbind"
)

// Options holds logging configuration bindable from the command line.
type Options struct {
	Level slog.Level
	JSON  bool
}

// Attrs returns the attribute table to splice into a binder's table.
func (o *Options) Attrs() []argbind.Attr {
	return []argbind.Attr{
		{
			Name:    "log_level",
			Type:    "string",
			Default: "INFO",
			Lazy:    true,
			Doc:     "log level (DEBUG, INFO, WARN, ERROR)",
		},
		{
			Name: "log_json",
			Type: "bool",
			Doc:  "log in JSON format",
		},
	}
}

// Bind pulls logging values out of a bound parameter set.
func (o *Options) Bind(params argbind.Params) error {
	if s, ok := params["log_level"].(string); ok {
		if err := o.Level.UnmarshalText([]byte(s)); err != nil {
			return err
		}
	}
	if b, ok := params["log_json"].(bool); ok {
		o.JSON = b
	}
	return nil
}

func (o *Options) ConfigureWithHandlerOptions(w io.Writer, handlerOpts *slog.HandlerOptions) {
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{}
	}
	handlerOpts.Level = o.Level

	var handler slog.Handler
	if o.JSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	slog.SetDefault(slog.New(handler))
}

func (o *Options) Configure() {
	o.ConfigureWithHandlerOptions(os.Stderr, nil)
}
