// Package files provides input file discovery for the table merging tool.
//
// Discovery resolves the user-supplied search path into a deterministic list
// of candidate input files. A single file path yields that file alone, a
// directory is walked recursively in lexical order, and only files whose
// extension is on the configured allow-list are considered candidates.
//
// Example usage:
//
//	discovery := files.NewDiscovery([]string{".csv", ".xlsx"})
//
//	candidates, err := discovery.Find("./data")
//	if err != nil {
//	    // path missing, or neither file nor directory
//	}
package files
