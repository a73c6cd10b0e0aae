// Package filesystem provides file-based implementations of driven port
// interfaces.
//
// Adapters:
//   - SnapshotStore: the raw JSON snapshot of fetched metadata
//   - DocumentStore: template reads and rendered document writes
//
// # Snapshot Format
//
// The snapshot is one JSON object keyed by full repository name, in fetch
// order, indented with four spaces and with non-ASCII text kept as UTF-8:
//
//	{
//	    "octocat/hello": {
//	        "html_url": "https://github.com/octocat/hello",
//	        "description": "",
//	        "listed": false,
//	        "stars": 42
//	    }
//	}
//
// Writes replace the whole file. Nothing guards against a partial write.
package filesystem
