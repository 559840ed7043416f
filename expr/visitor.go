package expr

// Visitor dispatches on an Expression's variant. Implementations
// typically embed *BaseVisitor and override only the variants they
// care about; BaseVisitor routes everything else to a single Fallback
// hook, so adding a new Expression variant never silently breaks an
// existing Visitor — it just falls back until updated.
type Visitor interface {
	VisitConstant(Constant) any
	VisitVariable(VarRef) any
	VisitLinear(Linear) any
	VisitPolynomial(Polynomial) any
	VisitLogarithmic(Logarithmic) any
	VisitPolyLog(PolyLog) any
	VisitExponential(Exponential) any
	VisitFactorial(Factorial) any
	VisitBinary(Binary) any
	VisitConditional(Conditional) any
	VisitPowerOf(PowerOf) any
	VisitLogOf(LogOf) any
	VisitExpOf(ExpOf) any
	VisitFactorialOf(FactorialOf) any
	VisitSpecialFunction(SpecialFunction) any
	VisitAmortized(Amortized) any
	VisitParallel(Parallel) any
	VisitProbabilistic(Probabilistic) any
	VisitMemory(Memory) any
	VisitInverseAckermann(InverseAckermann) any
}

// BaseVisitor implements Visitor by routing every method to Fallback.
// Embed it in a concrete visitor and shadow only the methods you need;
// unhandled variants — including ones added after this visitor was
// written — still get a well-defined result instead of a compile error
// or a panic.
type BaseVisitor struct {
	// Fallback receives the original Expression for any variant not
	// overridden by the embedding visitor. A nil Fallback makes every
	// unhandled variant return nil.
	Fallback func(Expression) any
}

func (b *BaseVisitor) dispatch(e Expression) any {
	if b.Fallback == nil {
		return nil
	}
	return b.Fallback(e)
}

func (b *BaseVisitor) VisitConstant(e Constant) any                 { return b.dispatch(e) }
func (b *BaseVisitor) VisitVariable(e VarRef) any                   { return b.dispatch(e) }
func (b *BaseVisitor) VisitLinear(e Linear) any                     { return b.dispatch(e) }
func (b *BaseVisitor) VisitPolynomial(e Polynomial) any             { return b.dispatch(e) }
func (b *BaseVisitor) VisitLogarithmic(e Logarithmic) any           { return b.dispatch(e) }
func (b *BaseVisitor) VisitPolyLog(e PolyLog) any                   { return b.dispatch(e) }
func (b *BaseVisitor) VisitExponential(e Exponential) any           { return b.dispatch(e) }
func (b *BaseVisitor) VisitFactorial(e Factorial) any               { return b.dispatch(e) }
func (b *BaseVisitor) VisitBinary(e Binary) any                     { return b.dispatch(e) }
func (b *BaseVisitor) VisitConditional(e Conditional) any           { return b.dispatch(e) }
func (b *BaseVisitor) VisitPowerOf(e PowerOf) any                   { return b.dispatch(e) }
func (b *BaseVisitor) VisitLogOf(e LogOf) any                       { return b.dispatch(e) }
func (b *BaseVisitor) VisitExpOf(e ExpOf) any                       { return b.dispatch(e) }
func (b *BaseVisitor) VisitFactorialOf(e FactorialOf) any           { return b.dispatch(e) }
func (b *BaseVisitor) VisitSpecialFunction(e SpecialFunction) any   { return b.dispatch(e) }
func (b *BaseVisitor) VisitAmortized(e Amortized) any               { return b.dispatch(e) }
func (b *BaseVisitor) VisitParallel(e Parallel) any                 { return b.dispatch(e) }
func (b *BaseVisitor) VisitProbabilistic(e Probabilistic) any       { return b.dispatch(e) }
func (b *BaseVisitor) VisitMemory(e Memory) any                     { return b.dispatch(e) }
func (b *BaseVisitor) VisitInverseAckermann(e InverseAckermann) any { return b.dispatch(e) }

func (e Constant) Accept(v Visitor) any         { return v.VisitConstant(e) }
func (e VarRef) Accept(v Visitor) any           { return v.VisitVariable(e) }
func (e Linear) Accept(v Visitor) any           { return v.VisitLinear(e) }
func (e Polynomial) Accept(v Visitor) any       { return v.VisitPolynomial(e) }
func (e Logarithmic) Accept(v Visitor) any      { return v.VisitLogarithmic(e) }
func (e PolyLog) Accept(v Visitor) any          { return v.VisitPolyLog(e) }
func (e Exponential) Accept(v Visitor) any      { return v.VisitExponential(e) }
func (e Factorial) Accept(v Visitor) any        { return v.VisitFactorial(e) }
func (e Binary) Accept(v Visitor) any           { return v.VisitBinary(e) }
func (e Conditional) Accept(v Visitor) any      { return v.VisitConditional(e) }
func (e PowerOf) Accept(v Visitor) any          { return v.VisitPowerOf(e) }
func (e LogOf) Accept(v Visitor) any            { return v.VisitLogOf(e) }
func (e ExpOf) Accept(v Visitor) any            { return v.VisitExpOf(e) }
func (e FactorialOf) Accept(v Visitor) any      { return v.VisitFactorialOf(e) }
func (e SpecialFunction) Accept(v Visitor) any  { return v.VisitSpecialFunction(e) }
func (e Amortized) Accept(v Visitor) any        { return v.VisitAmortized(e) }
func (e Parallel) Accept(v Visitor) any         { return v.VisitParallel(e) }
func (e Probabilistic) Accept(v Visitor) any    { return v.VisitProbabilistic(e) }
func (e Memory) Accept(v Visitor) any           { return v.VisitMemory(e) }
func (e InverseAckermann) Accept(v Visitor) any { return v.VisitInverseAckermann(e) }
