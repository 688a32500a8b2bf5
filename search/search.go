package search

import (
    "errors"
    "path/filepath"

    tiledb "github.com/TileDB-Inc/TileDB-Go"
)

var ErrOpenFail = errors.New("search: failed to open TileDB config/context/vfs")
var ErrReadFail = errors.New("search: failed to list or match entries")

// An internal general purpose trawling function. Potentially could be globally
// exported at a later date.
// The basename is only matched with the pattern, eg
// ("*.gsf", "0060_20150624_185509_Investigator_em710.gsf")
func trawl(vfs *tiledb.VFS, pattern string, uri string, items []string) ([]string, error) {
    dirs, files, err := vfs.List(uri)
    if err != nil {
        return items, errors.Join(ErrReadFail, err)
    }

    // check files for the matching pattern
    for _, file := range files {
        match, err := filepath.Match(pattern, filepath.Base(file))
        if err != nil {
            return items, errors.Join(ErrReadFail, err)
        }

        if match {
            items = append(items, file)
        }
    }

    // recurse over every directory
    for _, dir := range dirs {
        items, err = trawl(vfs, pattern, dir, items)
        if err != nil {
            return items, err
        }
    }

    return items, nil
}

// FindGsf recursively searches for *.gsf files under a given URI.
// The function uses the TileDB Go bindings to seamlessly search either local
// filesystems or object stores such as AWS-S3. A TileDB config is required
// for searching object stores with permission constraints.
func FindGsf(uri string, config_uri string) ([]string, error) {
    var (
        config *tiledb.Config
        err    error
        items  []string
        pattern string
    )

    // get a generic config if no path provided
    if config_uri == "" {
        config, err = tiledb.NewConfig()
        if err != nil {
            return nil, errors.Join(ErrOpenFail, err)
        }
    } else {
        config, err = tiledb.LoadConfig(config_uri)
        if err != nil {
            return nil, errors.Join(ErrOpenFail, err)
        }
    }

    defer config.Free()

    ctx, err := tiledb.NewContext(config)
    if err != nil {
        return nil, errors.Join(ErrOpenFail, err)
    }
    defer ctx.Free()

    vfs, err := tiledb.NewVFS(ctx, config)
    if err != nil {
        return nil, errors.Join(ErrOpenFail, err)
    }
    defer vfs.Free()

    items = make([]string, 0)
    pattern = "*.gsf"

    items, err = trawl(vfs, pattern, uri, items)
    if err != nil {
        return items, err
    }

    return items, nil
}
