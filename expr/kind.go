package expr

func (Constant) Kind() Kind         { return KindConstant }
func (VarRef) Kind() Kind           { return KindVariable }
func (Linear) Kind() Kind           { return KindLinear }
func (Polynomial) Kind() Kind       { return KindPolynomial }
func (Logarithmic) Kind() Kind      { return KindLogarithmic }
func (PolyLog) Kind() Kind          { return KindPolyLog }
func (Exponential) Kind() Kind      { return KindExponential }
func (Factorial) Kind() Kind        { return KindFactorial }
func (Binary) Kind() Kind           { return KindBinary }
func (Conditional) Kind() Kind      { return KindConditional }
func (PowerOf) Kind() Kind          { return KindPowerOf }
func (LogOf) Kind() Kind            { return KindLogOf }
func (ExpOf) Kind() Kind            { return KindExpOf }
func (FactorialOf) Kind() Kind      { return KindFactorialOf }
func (SpecialFunction) Kind() Kind  { return KindSpecialFunction }
func (Amortized) Kind() Kind        { return KindAmortized }
func (Parallel) Kind() Kind         { return KindParallel }
func (Probabilistic) Kind() Kind    { return KindProbabilistic }
func (Memory) Kind() Kind           { return KindMemory }
func (InverseAckermann) Kind() Kind { return KindInverseAckermann }
