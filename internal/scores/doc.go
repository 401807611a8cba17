// Package scores loads, validates, and appends round results.
//
// The scores file (scores.json by default) is a JSON array of records:
//
//	[
//	  {
//	    "name": "Ana",
//	    "attempts": 4,
//	    "timeMs": 21873,
//	    "difficulty": "Normal",
//	    "date": "2026-01-02T03:04:05.678Z"
//	  },
//	  {
//	    "name": "Ana",
//	    "attempts": 8,
//	    "timeMs": 0,
//	    "difficulty": "Hard",
//	    "date": "2026-01-02T03:09:12.001Z",
//	    "note": "loss/exit"
//	  }
//	]
//
// # Loading
//
// A missing, unreadable, malformed, or schema-invalid file is treated as an
// empty history. Open never fails; Read and Validate report the reason.
//
// # Writing
//
// Every successful Append rewrites the whole file with 2-space indentation
// and a trailing newline. A store opened with persistence disabled never
// touches the file.
package scores
