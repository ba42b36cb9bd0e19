// devcli bundles the toolkit's small developer commands:
// base64 encode/decode, sha256 digests, url query extraction
// and calendar rendering.
package main

import (
	"fmt"
	"net/url"
	"os"
	"sort"

	"github.com/spf13/pflag"

	"github.com/karatsuba/toolkit/chrono"
	"github.com/karatsuba/toolkit/codec"
	"github.com/karatsuba/toolkit/config"
)

func main() {
	config.GetConfig()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "b64enc":
		err = runB64Enc(args)
	case "b64dec":
		err = runB64Dec(args)
	case "sha256":
		err = runSHA256(args)
	case "urlext":
		err = runURLExt(args)
	case "now":
		err = runNow(args)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: devcli <command> [flags] [args]

commands:
  b64enc VALUE [--url-safe]     encode VALUE as base64
  b64dec VALUE [--url-safe]     decode a base64 VALUE
  sha256 VALUE [--file]         hex digest of VALUE or of a file
  urlext URL [-q]               print URL parts, -q lists query parameters
  now [--zone Z] [--pattern P]  render the current time
`)
}

func runB64Enc(args []string) error {
	flags := pflag.NewFlagSet("b64enc", pflag.ExitOnError)
	urlSafe := flags.Bool("url-safe", false, "use URL-safe alphabet")
	_ = flags.Parse(args)
	if flags.NArg() != 1 {
		return fmt.Errorf("b64enc: exactly one VALUE expected")
	}

	if *urlSafe {
		fmt.Println(codec.EncodeBase64(flags.Arg(0)))
	} else {
		fmt.Println(codec.EncodeBase64Std([]byte(flags.Arg(0))))
	}
	return nil
}

func runB64Dec(args []string) error {
	flags := pflag.NewFlagSet("b64dec", pflag.ExitOnError)
	urlSafe := flags.Bool("url-safe", false, "use URL-safe alphabet")
	_ = flags.Parse(args)
	if flags.NArg() != 1 {
		return fmt.Errorf("b64dec: exactly one VALUE expected")
	}

	var (
		b   []byte
		err error
	)
	if *urlSafe {
		b, err = codec.DecodeBase64Bytes(flags.Arg(0))
	} else {
		b, err = codec.DecodeBase64Std(flags.Arg(0))
	}
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func runSHA256(args []string) error {
	flags := pflag.NewFlagSet("sha256", pflag.ExitOnError)
	file := flags.Bool("file", false, "treat VALUE as a file path")
	_ = flags.Parse(args)
	if flags.NArg() != 1 {
		return fmt.Errorf("sha256: exactly one VALUE expected")
	}

	if *file {
		sum, err := codec.SHA256File(flags.Arg(0))
		if err != nil {
			return err
		}
		fmt.Println(sum)
		return nil
	}
	fmt.Println(codec.SHA256(flags.Arg(0)))
	return nil
}

func runURLExt(args []string) error {
	flags := pflag.NewFlagSet("urlext", pflag.ExitOnError)
	qs := flags.BoolP("query-string", "q", false, "list query parameters")
	_ = flags.Parse(args)
	if flags.NArg() != 1 {
		return fmt.Errorf("urlext: exactly one URL expected")
	}

	u, err := url.Parse(flags.Arg(0))
	if err != nil {
		return fmt.Errorf("urlext: %w", err)
	}

	if !*qs {
		fmt.Printf("scheme: %s\nhost: %s\npath: %s\n", u.Scheme, u.Host, u.Path)
		return nil
	}
	params := u.Query()
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %s\n", k, params.Get(k))
	}
	return nil
}

func runNow(args []string) error {
	flags := pflag.NewFlagSet("now", pflag.ExitOnError)
	zone := flags.String("zone", "", "IANA zone id, defaults to the configured zone")
	pattern := flags.String("pattern", chrono.DefaultPattern, "output pattern")
	_ = flags.Parse(args)

	c := chrono.Now()
	if *zone != "" {
		var err error
		if c, err = c.WithZone(*zone); err != nil {
			return err
		}
	}
	s, err := c.FormatPattern(*pattern)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}
