package interpreter

// HelpText is the usage summary printed by the help command.
const HelpText = `CQL — Catalog Query Language

Catalog:
  add artist <artist>
  add album <album> by <artist>
  add track <track> on <album> by <artist>
  listen to <track> on <album> by <artist>

Queries:
  list albums by <artist>
  list tracks on <album> by <artist>
  list top <n> tracks
  list top <n> artists

Session:
  help    Show this summary
  quit    Leave the REPL

Names may span several words. Quote a name when it contains a keyword
that would otherwise end it:
  add album "stand by me" by ben e. king

Examples:
  add artist bob
  add album "okie dokie" by bob
  add track infusion on "okie dokie" by bob
  listen to infusion on "okie dokie" by bob
  list top 10 tracks`
