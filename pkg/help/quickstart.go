package help

const QuickstartYAML = `# perf-counter Quick Start

strategies:
  sequential: "One pass over the whole file (default, baseline)"
  threads: "Worker-pool goroutines over chunks"
  processes: "Isolated child process per chunk"

commands:
  basic_count: |
    perf-counter count --file original.txt

  threaded_count: |
    perf-counter count --file original.txt --strategy threads --chunk-size 100000

  process_count: |
    perf-counter count --file original.txt --strategy processes --workers 4

  compare_strategies: |
    perf-counter compare --file original.txt --chunk-size 100000

  generate_corpus: |
    perf-counter generate --out original.txt --records 10000000 --alphabet "A,B,C,D"

  list_runs: |
    perf-counter runs list

  run_details: |
    perf-counter runs show 5

  query_runs: |
    perf-counter runs list --today
    perf-counter runs list --failed
    perf-counter runs list --file=original

key_files:
  - "perf-counter-results/FIELDS.yaml (field reference)"
  - "perf-counter-results/index.yaml (all runs)"
  - "perf-counter-results/runs/2026-01-15T10-30-run{id}/run.yaml (run metadata)"
  - "perf-counter-results/runs/2026-01-15T10-30-run{id}/counts.yaml (full table)"

run_system:
  - "Runs tracked in SQLite database next to the binary"
  - "Auto-incrementing run IDs (1, 2, 3...)"
  - "Run directories: runs/2026-01-15T10-30-run1 (timestamp + ID)"
  - "Same file + strategy + chunk size = instant cache hit from DB"
  - "Cache checks file size and mod time, so edits force a recount"
  - "Use 'perf-counter runs list' to list all runs"
  - "Use 'perf-counter runs show <id>' for details"

runs_commands:
  list: "List all runs with stats (--limit, --today, --failed, --file=pattern)"
  show_id: "Show detailed info and counts for a run (defaults to latest)"
  init: "Initialize database schema"

count_invariants:
  - "All three strategies produce identical tables for the same file"
  - "total_chars always equals the file size in bytes"
  - "Chunk size only affects speed, never the counts"
  - "Empty files produce empty tables"

flag_examples:
  mmap_reads: 'perf-counter count --file big.txt --strategy threads --mmap'
  fixed_workers: 'perf-counter count --file big.txt --strategy threads --workers 8'
  skip_cache: 'perf-counter count --file big.txt --force'
  json_output: 'perf-counter count --file big.txt --format json'

error_behavior:
  - "Bad chunk size or strategy: fail fast before reading the file"
  - "Worker failures abort the run; no partial counts are kept"
  - "Failed runs are recorded with their error message"
  - "Exit codes: 0=success, 1=run failed, 2=configuration or infra error"
`
