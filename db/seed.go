package db

import "github.com/cryptoquest/insight-api/models"

// seedBank is the general trading-knowledge bank shipped with the service.
// The correct option is listed first in authored order; display order is
// shuffled per session by the generator.
func seedBank() []models.QuestionImport {
	entries := []struct {
		q       string
		options []string
	}{
		{"Which indicator measures volatility?", []string{"Bollinger Bands", "RSI", "MACD", "EMA"}},
		{"What does RSI stand for?", []string{"Relative Strength Index", "Rate of Share Increase", "Risk Sentiment Indicator", "Relative Stock Impact"}},
		{"Which pattern signals potential reversal?", []string{"Head and Shoulders", "Ascending Channel", "Flag", "Triangle"}},
		{"What is dollar-cost averaging?", []string{"Buying fixed amounts periodically", "Selling at fixed profit", "Shorting with leverage", "Holding without buying"}},
		{"Which order executes immediately at market price?", []string{"Market Order", "Limit Order", "Stop Order", "OCO Order"}},
		{"What reduces risk by diversifying assets?", []string{"Portfolio diversification", "Martingale", "Averaging down", "All-in"}},
		{"Which moving average reacts faster?", []string{"EMA", "SMA", "WMA", "VWAP"}},
		{"What is a stop-loss used for?", []string{"Limiting downside", "Increasing leverage", "Boosting profits", "Averaging entries"}},
		{"Which timeframe suits scalping?", []string{"1–5 minutes", "4 hours", "Daily", "Weekly"}},
		{"What does MACD compare?", []string{"Two EMAs and signal", "Two RSIs", "Two SMAs", "Price and volume"}},
		{"What is the main benefit of using limit orders?", []string{"Control entry price", "Faster execution", "Higher leverage", "Avoid slippage"}},
		{"Which indicator is typically used to identify overbought/oversold?", []string{"RSI", "Ichimoku Cloud", "ATR", "OBV"}},
		{"What does ATR measure?", []string{"Average True Range", "Average Trade Return", "Asset Trend Ratio", "Accumulated Trade Risk"}},
		{"A bullish engulfing pattern suggests what?", []string{"Potential upward reversal", "Continuation downtrend", "Neutral movement", "Sideways consolidation"}},
		{"What does diversification help reduce?", []string{"Unsystematic risk", "Systematic risk", "Leverage risk", "Execution risk"}},
		{"Which tool plots support/resistance via percentages?", []string{"Fibonacci retracement", "VWAP", "ADX", "OBV"}},
		{"What is slippage?", []string{"Difference between expected and executed price", "Broker fee", "Spread widening", "Latency delay"}},
		{"Which strategy follows the trend?", []string{"Moving average crossover", "Mean reversion", "Arbitrage", "Grid trading"}},
		{"What does liquidity refer to?", []string{"Ease of buying/selling without large price impact", "Leverage amount", "Market volatility", "Number of traders"}},
		{"What does VWAP represent?", []string{"Volume Weighted Average Price", "Variable Weighted Asset Price", "Volatility Weighted Average Position", "Value Weighted Average Profit"}},
		{"Which candlestick shows indecision?", []string{"Doji", "Hammer", "Marubozu", "Shooting Star"}},
		{"Which order protects profits after price moves favorably?", []string{"Trailing stop", "Limit sell", "Market sell", "OCO"}},
		{"What is leverage?", []string{"Borrowed capital to increase position size", "Reducing risk", "Averaging entries", "Hedging"}},
		{"What does a high Sharpe ratio indicate?", []string{"Better risk-adjusted returns", "Higher fees", "More volatility", "Lower returns"}},
		{"Which pattern suggests continuation?", []string{"Bullish flag", "Head and shoulders", "Double top", "Evening star"}},
		{"What does OBV track?", []string{"On-Balance Volume", "Overall Buy Value", "Off-Book Volume", "Order Book Velocity"}},
		{"What does a breakout above resistance suggest?", []string{"Potential upward move", "Immediate reversal", "No change", "Lower liquidity"}},
		{"What is mean reversion?", []string{"Prices revert to average over time", "Prices always trend", "Buy strength sell weakness", "Follow momentum"}},
		{"Which tool displays multiple averages and clouds?", []string{"Ichimoku", "RSI", "MACD", "Stochastic"}},
		{"Which market condition suits range trading?", []string{"Sideways", "Strong uptrend", "Strong downtrend", "Breakout"}},
		{"What is a stop order triggered by?", []string{"Stop price", "Limit price", "Time", "Volume"}},
		{"Which security measure prevents large losses?", []string{"Stop-loss", "Martingale", "Averaging down", "Pyramiding"}},
		{"What does correlation near +1 indicate?", []string{"Assets move together", "Assets move opposite", "No relation", "High volatility"}},
		{"Which timeframe suits swing trading?", []string{"4H–Daily", "1–5m", "Weekly only", "15m–30m"}},
		{"What does a hammer at support suggest?", []string{"Potential reversal up", "Continuation down", "Neutral", "Breakdown"}},
		{"What is position sizing?", []string{"Determining trade size by risk", "Choosing broker", "Selecting timeframe", "Setting alerts"}},
		{"Which moving average filters noise better?", []string{"SMA", "EMA", "WMA", "HMA"}},
		{"What does risk-to-reward 1:3 mean?", []string{"Risk 1 unit to aim 3 units", "Risk 3 units to aim 1", "Equal risk/reward", "No risk"}},
		{"Which indicator compares two EMAs?", []string{"MACD", "RSI", "ADX", "ATR"}},
		{"What is a double bottom?", []string{"Bullish reversal", "Bearish continuation", "Neutral pattern", "Exhaustion gap"}},
		{"Which term describes buying at regular intervals?", []string{"DCA", "HFT", "Scalping", "Grid"}},
		{"What is spread?", []string{"Difference between bid and ask", "Broker commission", "Price gap", "Order size"}},
		{"Which tool measures trend strength?", []string{"ADX", "OBV", "ATR", "RSI"}},
		{"Which chart pattern forms a narrowing range?", []string{"Triangle", "Rectangle", "Flag", "Cup and handle"}},
		{"What is alpha?", []string{"Excess return over benchmark", "Risk measure", "Volatility", "Fee"}},
		{"Which order type sets max buy price?", []string{"Limit", "Market", "Stop", "Trailing"}},
		{"What is hedging?", []string{"Offsetting risk with another position", "Increasing leverage", "Averaging down", "Ignoring risk"}},
		{"Which oscillator uses %K and %D?", []string{"Stochastic", "RSI", "MACD", "CCI"}},
		{"What is a bear market?", []string{"Prolonged price decline", "Sideways movement", "Rapid rise", "Low volatility"}},
		{"Which metric is total trading volume over time?", []string{"OBV", "RSI", "VWAP", "ATR"}},
		{"What does take-profit do?", []string{"Closes trade at target price", "Adds to position", "Sets stop-loss", "Opens hedge"}},
		{"Which setup focuses on breakouts from consolidation?", []string{"Volatility squeeze", "Mean reversion", "Carry trade", "Arbitrage"}},
		{"What is beta?", []string{"Volatility relative to market", "Excess return", "Risk-free rate", "Leverage"}},
		{"Which pattern resembles a cup followed by small dip?", []string{"Cup and handle", "Flag", "Wedge", "Rectangle"}},
		{"What is the typical max risk per trade recommended?", []string{"1%", "5%", "10%", "20%"}},
		{"Which action best reduces portfolio drawdowns?", []string{"Using stop-losses", "Doubling down", "Removing stops", "Increasing leverage"}},
		{"Kelly Criterion is primarily used for", []string{"Position sizing", "Trend detection", "Broker selection", "Tax optimization"}},
		{"R multiple refers to", []string{"Risk-based return unit", "Relative momentum", "Rate of change", "Return after fees"}},
		{"With a 40% win rate and 1:3 R:R, expectancy is", []string{"Positive", "Negative", "Zero", "Undefined"}},
		{"Which strategy buys pullbacks in an uptrend?", []string{"Trend following", "Mean reversion", "Arbitrage", "Grid"}},
		{"Breakout entries are strongest when", []string{"High volume at resistance", "Low liquidity", "No stop-loss", "Random entries"}},
		{"In range markets, entries are best", []string{"Near support/resistance", "At all-time high", "After parabolic move", "Random"}},
		{"VWAP retest entries help confirm", []string{"Institutional average price", "Risk-free return", "Tax basis", "Funding rate"}},
		{"Which timeframe mix suits swing trading?", []string{"4H and Daily", "1m only", "Weekly only", "Tick charts"}},
		{"Which bias leads to chasing winners?", []string{"Recency bias", "Loss aversion", "Anchoring", "Confirmation"}},
		{"Best response to consecutive losses is", []string{"Reduce size and follow plan", "Increase leverage", "Double down", "Remove stop"}},
		{"What helps maintain trading discipline?", []string{"Written trading plan", "Social media tips", "Hunches", "Random entries"}},
		{"Which routine improves decision quality?", []string{"Journaling after each trade", "Skipping reviews", "Trading sleep-deprived", "Ignoring emotions"}},
		{"FOMO stands for", []string{"Fear of missing out", "Forecast of market oscillation", "Fund order management", "Fee optimization"}},
		{"Which indicator shows momentum crossovers?", []string{"MACD", "OBV", "ATR", "VWAP"}},
		{"A shooting star at resistance often implies", []string{"Bearish reversal", "Bullish continuation", "Neutral", "Gap fill"}},
		{"Which tool identifies support via retracement levels?", []string{"Fibonacci", "RSI", "ADX", "CCI"}},
		{"ADX primarily measures", []string{"Trend strength", "Overbought/oversold", "Liquidity", "Risk"}},
		{"Which pattern can signal exhaustion after a strong uptrend?", []string{"Rising wedge", "Bull flag", "Cup and handle", "Rectangle"}},
	}

	bank := make([]models.QuestionImport, 0, len(entries))
	for _, e := range entries {
		bank = append(bank, models.QuestionImport{
			Question:      e.q,
			Options:       e.options,
			CorrectOption: e.options[0],
		})
	}
	return bank
}
