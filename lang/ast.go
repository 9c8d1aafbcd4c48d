package lang

// Program is the root of the abstract syntax tree: one main block and zero
// or more named procedures, in declaration order.
type Program struct {
	Main  *Block
	Procs []*Procedure
}

// Proc retrieves a procedure by name.
// Returns (nil, false) if no procedure with that name is declared.
func (p *Program) Proc(name string) (*Procedure, bool) {
	for _, proc := range p.Procs {
		if proc.Name == name {
			return proc, true
		}
	}

	return nil, false
}

// Procedure is a named, parameterless, reusable statement block.
type Procedure struct {
	Name string
	Line int
	Body *Block
}

// Block is an ordered statement sequence. The parser only attaches a Block
// to its parent after seeing its closing brace; a Block whose delimiter is
// missing is never constructed.
type Block struct {
	Stmts []Stmt
}

// Stmt is the closed set of statement variants. The executor matches
// exhaustively on the concrete types, so adding a variant is a
// compile-checked change.
type Stmt interface {
	// Pos returns the statement's originating source line for diagnostics.
	Pos() int

	stmt()
}

// CommandStmt applies a single movement or paint command to the board.
type CommandStmt struct {
	Cmd  Command
	Line int
}

// CallStmt invokes a procedure by exact name match at run time.
type CallStmt struct {
	Name string
	Line int
}

// RepeatStmt executes its body Count times in strict sequence.
type RepeatStmt struct {
	Count int
	Line  int
	Body  *Block
}

// IfStmt evaluates exactly one sensor against the head's current cell and
// executes Then on true, Else (when present) on false.
type IfStmt struct {
	Cond Sensor
	Line int
	Then *Block
	Else *Block
}

func (s *CommandStmt) Pos() int { return s.Line }
func (s *CallStmt) Pos() int    { return s.Line }
func (s *RepeatStmt) Pos() int  { return s.Line }
func (s *IfStmt) Pos() int      { return s.Line }

func (*CommandStmt) stmt() {}
func (*CallStmt) stmt()    {}
func (*RepeatStmt) stmt()  {}
func (*IfStmt) stmt()      {}

// Command enumerates the eight movement/paint commands.
type Command int

const (
	CmdMoveUp Command = iota
	CmdMoveDown
	CmdMoveRight
	CmdMoveLeft
	CmdPaintBlack
	CmdPaintRed
	CmdPaintGreen
	CmdClear
)

// String returns the command's surface keyword.
func (c Command) String() string {
	switch c {
	case CmdMoveUp:
		return "MoverArriba"
	case CmdMoveDown:
		return "MoverAbajo"
	case CmdMoveRight:
		return "MoverDerecha"
	case CmdMoveLeft:
		return "MoverIzquierda"
	case CmdPaintBlack:
		return "PintarNegro"
	case CmdPaintRed:
		return "PintarRojo"
	case CmdPaintGreen:
		return "PintarVerde"
	case CmdClear:
		return "Limpiar"
	default:
		return "unknown"
	}
}

// Sensor enumerates the four zero-argument boolean queries about the head's
// current cell.
type Sensor int

const (
	SenseEmpty Sensor = iota
	SensePaintedBlack
	SensePaintedRed
	SensePaintedGreen
)

// String returns the sensor's surface keyword.
func (s Sensor) String() string {
	switch s {
	case SenseEmpty:
		return "estaVacia?"
	case SensePaintedBlack:
		return "estaPintadaNegro?"
	case SensePaintedRed:
		return "estaPintadaRojo?"
	case SensePaintedGreen:
		return "estaPintadaVerde?"
	default:
		return "unknown"
	}
}

// commandKinds maps command token kinds to their AST command.
var commandKinds = map[Kind]Command{
	KindMoverArriba:    CmdMoveUp,
	KindMoverAbajo:     CmdMoveDown,
	KindMoverDerecha:   CmdMoveRight,
	KindMoverIzquierda: CmdMoveLeft,
	KindPintarNegro:    CmdPaintBlack,
	KindPintarRojo:     CmdPaintRed,
	KindPintarVerde:    CmdPaintGreen,
	KindLimpiar:        CmdClear,
}

// sensorKinds maps sensor token kinds to their AST sensor.
var sensorKinds = map[Kind]Sensor{
	KindEstaVacia:        SenseEmpty,
	KindEstaPintadaNegro: SensePaintedBlack,
	KindEstaPintadaRojo:  SensePaintedRed,
	KindEstaPintadaVerde: SensePaintedGreen,
}
