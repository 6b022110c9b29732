package stacklang

// bootSource is spec §4.6's bootstrap: structured control flow built
// entirely out of branch/0branch/falsyBranch/here/-stackFrame. It is
// compiled once, via the ordinary Query loop, when a fresh core
// Dictionary is built, so that "if/else/endif/begin/until/again/repeat"
// are available to every user program exactly like any other word.
const bootSource = `
: ahead                here 0 , ;
: <back                here -stackFrame , ;
: if     immediate     postpone falsyBranch ahead ;
: endif  immediate     here over -stackFrame swap ! ;
: else   immediate     postpone branch ahead swap postpone endif ;
: begin  immediate     here ;
: until  immediate     postpone falsyBranch <back ;
: again  immediate     postpone branch <back ;
: repeat immediate     postpone again postpone endif ;
`
