package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/quadtree-mcp/internal/quadtree"
	"github.com/ironsheep/quadtree-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("quadtree-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("quadtree-mcp - MCP server for quadtree image approximation")
			fmt.Println()
			fmt.Println("Usage: quadtree-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  QUADTREE_MCP_LOG_LEVEL=debug  Enable debug logging")
			fmt.Printf("  QUADTREE_MCP_MAX_DEPTH=N      Default maximum depth (%d)\n", quadtree.DefaultMaxDepth)
			fmt.Printf("  QUADTREE_MCP_THRESHOLD=F      Default error threshold (%g)\n", quadtree.DefaultThreshold)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("QUADTREE_MCP_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("Quadtree MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cfg := configFromEnv()
	if debug {
		log.Printf("Defaults: max_depth=%d threshold=%g", cfg.MaxDepth, cfg.Threshold)
	}

	srv := server.NewWithOptions(server.Options{Defaults: cfg, Debug: debug})
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// configFromEnv applies QUADTREE_MCP_MAX_DEPTH and QUADTREE_MCP_THRESHOLD on
// top of the defaults. Values that fail to parse or validate are logged and
// ignored.
func configFromEnv() quadtree.Config {
	cfg := quadtree.DefaultConfig()

	if v := os.Getenv("QUADTREE_MCP_MAX_DEPTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Printf("Ignoring QUADTREE_MCP_MAX_DEPTH=%q", v)
		} else {
			cfg.MaxDepth = n
		}
	}

	if v := os.Getenv("QUADTREE_MCP_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		next := cfg
		next.Threshold = f
		if err != nil || next.Validate() != nil {
			log.Printf("Ignoring QUADTREE_MCP_THRESHOLD=%q", v)
		} else {
			cfg = next
		}
	}

	return cfg
}
