// Package cmd implements the denv subcommands.
//
// Each command locates its env file the same way: the --file flag when
// given, otherwise the nearest .env found by walking parent
// directories. Commands that read the document resolve it through the
// dotenv engine first, so printed values reflect ${...} expansion.
package cmd
