package help

const ColdstartYAML = `# sce Quick Start

run_modes:
  all: "Generate every field for every topic (default)"
  first_only: "Generate only the first topic, for prompt iteration"

commands:
  init_config: |
    sce config init

  inspect_config: |
    sce config show

  load_topics: |
    sce config set-topics --csv topics.csv

  generate_all: |
    sce generate

  iterate_on_prompts: |
    sce generate --first-only

  dry_run: |
    sce generate --mock

  audit_links: |
    sce links audit --html draft.html

  list_runs: |
    sce db runs

  run_details: |
    sce db run 5

credentials:
  gemini: "GEMINI_API_KEY (models starting with 'gemini')"
  openai: "OPENAI_API_KEY (models starting with 'gpt')"
  anthropic: "ANTHROPIC_API_KEY (models starting with 'claude')"

key_files:
  - "sce-config.json (model, prompts, links, topic table)"
  - "sce-results/index.yaml (all runs)"
  - "sce-results/runs/<run-id>/results.csv (generated content)"
  - "sce-results/runs/<run-id>/summary.yaml (run metadata)"
  - "sce-results/sce-history.db (run history, SQLite)"

run_system:
  - "Runs tracked in SQLite database"
  - "Run directories: runs/2026-01-15T10-30-<hash> (timestamp + config hash)"
  - "Use 'sce db runs' to list all runs"
  - "Use 'sce db run <id>' for per-field details"
  - "Failed fields carry their error text in the results CSV"

error_behavior:
  - "Missing API key: every field fails fast, no network calls"
  - "Transient provider errors: retried up to 3 times with linear backoff"
  - "A failed field never aborts the batch; remaining fields still run"
  - "Empty topic table: generate exits with an error before any call"
`
