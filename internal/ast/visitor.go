package ast

// Visitor is implemented by any AST consumer that needs double dispatch
// over the full node set: the pretty-printer (internal/prettyprint), and
// eventually the evaluator. Modeled on the teacher repo's own
// internal/ast.Visitor so every walker shares one dispatch mechanism.
type Visitor interface {
	VisitBlock(b *Block)
	VisitIdentifier(i *Identifier)

	VisitVarDeclaration(s *VarDeclaration)
	VisitExpressionStatement(s *ExpressionStatement)
	VisitIf(s *If)
	VisitLoop(s *Loop)
	VisitFor(s *For)
	VisitReturn(s *Return)
	VisitBreak(s *Break)
	VisitContinue(s *Continue)

	VisitLiteralValue(e *LiteralValue)
	VisitIdentPath(e *IdentPath)
	VisitListDeclaration(e *ListDeclaration)
	VisitDictDeclaration(e *DictDeclaration)
	VisitAssignment(e *Assignment)
	VisitPipeOperation(e *PipeOperation)
	VisitBinaryOperation(e *BinaryOperation)
	VisitUnaryOperation(e *UnaryOperation)
	VisitCallableArg(e *CallableArg)
	VisitCallableArgs(e *CallableArgs)
	VisitFunctionCall(e *FunctionCall)
	VisitObjectAccess(e *ObjectAccess)
	VisitNewInstance(e *NewInstance)
}
