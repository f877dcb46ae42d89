package main

import (
	"context"
	"encoding/json"
	"flickr-client/flickr"
	"flickr-client/mirror"
	"fmt"
	"github.com/minio/minio-go/v7"
	miniocredentials "github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/paulmach/orb"
	flag "github.com/spf13/pflag"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

var verbose = flag.BoolP("verbose", "v", false, "Log requests")
var format = flag.String("format", "", "Response format to request: rest or json (default $FLICKR_FORMAT or rest)")
var perms = flag.String("perms", "read", "Permissions to ask for with login-url")
var size = flag.String("size", flickr.Medium, "Image size for mirror")
var bbox = flag.String("bbox", "", "Restrict search to min_lng,min_lat,max_lng,max_lat")

const usage = `usage: flickr-cli [flags] <command> [args]

commands:
  call <method> [key=value...]   invoke any remote method and print the payload
  search [key=value...]          search photos
  user <email or username>       find a user
  groups <query> [key=value...]  search groups
  login-url                      print the authorization page URL
  token <frob>                   exchange a frob for an auth token
  mirror [key=value...]          search photos and copy them to $MINIO_BUCKET
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	if os.Getenv("APP_ENV") == "development" || *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	slog.SetDefault(logger)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	opts, err := flickr.OptionsFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	if *format != "" {
		opts.Format = *format
	}
	opts.Logger = logger
	fc, err := flickr.New(opts)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	cmd, args := args[0], args[1:]
	switch cmd {
	case "call":
		if len(args) == 0 {
			log.Fatal("call needs a method")
		}
		resp, err := fc.Invoke(ctx, flickr.MethodName(args[0]), parseParams(args[1:]))
		if err != nil {
			log.Fatal(err)
		}
		printJSON(resp)
	case "search":
		photos, err := search(ctx, fc, parseParams(args))
		if err != nil {
			log.Fatal(err)
		}
		printPhotos(ctx, photos)
	case "user":
		if len(args) != 1 {
			log.Fatal("user needs an email or username")
		}
		u, err := fc.Users(ctx, args[0])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s\t%s\t%s\n", u.ID(), u.Username(), u.URL())
	case "groups":
		if len(args) == 0 {
			log.Fatal("groups needs a query")
		}
		groups, err := fc.Groups(ctx, args[0], parseParams(args[1:]))
		if err != nil {
			log.Fatal(err)
		}
		for _, g := range groups {
			fmt.Printf("%s\t%s\t18+=%t\n", g.ID(), g.Name(), g.EighteenPlus())
		}
	case "login-url":
		fmt.Println(fc.LoginURL(*perms))
	case "token":
		if len(args) != 1 {
			log.Fatal("token needs a frob")
		}
		token, err := fc.GetTokenFrom(ctx, args[0])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(token)
		if u := fc.User(); u != nil {
			slog.Info("authenticated", "nsid", u.ID(), "username", u.Username())
		}
	case "mirror":
		doMirror(ctx, fc, parseParams(args))
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func search(ctx context.Context, fc *flickr.Client, params flickr.Params) (*flickr.PhotoCollection, error) {
	if *bbox == "" {
		return fc.PhotosSearch(ctx, params)
	}
	parts := strings.Split(*bbox, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("bbox needs four comma separated numbers")
	}
	var v [4]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("parse bbox: %w", err)
		}
		v[i] = f
	}
	bound := orb.Bound{Min: orb.Point{v[0], v[1]}, Max: orb.Point{v[2], v[3]}}
	return fc.PhotosWithin(ctx, bound, params)
}

func doMirror(ctx context.Context, fc *flickr.Client, params flickr.Params) {
	minioEndpoint := mustGetEnv("MINIO_ENDPOINT")
	minioAccessKey := mustGetEnv("MINIO_ACCESS_KEY")
	minioSecretKey := mustGetEnv("MINIO_SECRET_KEY")
	bucket := mustGetEnv("MINIO_BUCKET")
	mc, err := minio.New(minioEndpoint, &minio.Options{
		Creds:  miniocredentials.NewStaticV4(minioAccessKey, minioSecretKey, ""),
		Secure: true,
	})
	if err != nil {
		log.Fatal(err)
	}

	photos, err := search(ctx, fc, params)
	if err != nil {
		log.Fatal(err)
	}
	results, err := mirror.Photos(ctx, fc, mc, bucket, photos.Photos, *size)
	for _, res := range results {
		fmt.Println(res)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func parseParams(args []string) flickr.Params {
	params := flickr.Params{}
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			log.Fatalf("expected key=value, got %q", arg)
		}
		params[k] = v
	}
	return params
}

func printPhotos(ctx context.Context, photos *flickr.PhotoCollection) {
	for _, p := range photos.Photos {
		src, err := p.Source(ctx, *size)
		if err != nil {
			slog.Warn("no source", "photo", p.ID(), "err", err)
		}
		fmt.Printf("%s\t%s\t%s\n", p.ID(), p.Get("title"), src)
	}
	if pg := photos.Pagination; pg != nil {
		fmt.Printf("page %d of %d (%d total)\n", pg.Page, pg.Pages, pg.Total)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatal(err)
	}
}

func mustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s not set", key)
	}
	return value
}
