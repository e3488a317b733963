package cricket

const matchListHTML = `<html><body>
<ul class="cb-col cb-col-100 videos-carousal-wrapper cb-mtch-crd-rt-itm">
  <li class="cb-view-all-ga cb-match-card cb-bg-white">
    <a href="/live-cricket-scores/12345/india-vs-australia-1st-test">
      <div class="cb-mtch-crd-hdr">Border-Gavaskar Trophy • 1st Test</div>
      <div class="cb-hmscg-tm-bat-scr">
        <div class="cb-col-50 cb-hmscg-tm-nm"><span class="text-normal">IND</span></div>
        <div class="cb-col-50 cb-ovr-flo"> 245/6 (70) </div>
      </div>
      <div class="cb-hmscg-tm-bwl-scr">
        <div class="cb-col-50 cb-hmscg-tm-nm"><span class="text-normal">AUS</span></div>
        <div class="cb-col-50 cb-ovr-flo">310</div>
      </div>
      <div class="cb-mtch-crd-state">Day 2: Stumps</div>
    </a>
  </li>
  <li class="cb-view-all-ga cb-match-card cb-bg-white">
    <a href="/cricket-schedule">View full schedule</a>
  </li>
  <li class="cb-view-all-ga cb-match-card cb-bg-white">
    <a href="/live-cricket-scores/67890/eng-vs-nz-2nd-odi">
      <div class="cb-mtch-crd-hdr">New Zealand tour of England • 2nd ODI</div>
      <div class="cb-hmscg-tm-bat-scr">
        <div class="cb-col-50"><span class="text-normal">ENG</span></div>
        <div class="cb-col-50"></div>
      </div>
      <div class="cb-hmscg-tm-bwl-scr">
        <div class="cb-col-50"><span class="text-normal">NZ</span></div>
        <div class="cb-col-50"></div>
      </div>
      <div class="cb-mtch-crd-state">Match starts at 10:30 GMT</div>
    </a>
  </li>
</ul>
</body></html>`

const liveScoreHTML = `<html><body>
<div class="cb-min-bat-rw"><span class="cb-font-20 text-bold">IND 245/6 (70)</span><span class="cb-text-gray">AUS 310</span></div>
<div class="cb-min-inf">
  <div class="cb-min-hdr-rw"><div class="cb-col">Batter</div><div class="cb-col">R</div></div>
  <div class="cb-min-itm-rw"><div class="cb-col"><a class="cb-text-link">Virat Kohli</a></div><div class="cb-col">85</div><div class="cb-col">120</div><div class="cb-col">9</div><div class="cb-col">1</div><div class="cb-col">70.83</div></div>
  <div class="cb-min-itm-rw"><div class="cb-col"></div><div class="cb-col">-</div></div>
  <div class="cb-min-itm-rw"><div class="cb-col"><a class="cb-text-link">Rishabh Pant</a></div><div class="cb-col">12</div><div class="cb-col">12</div><div class="cb-col">2</div><div class="cb-col">0</div><div class="cb-col">100.00</div></div>
</div>
<div class="cb-min-inf">
  <div class="cb-min-itm-rw"><div class="cb-col"><a class="cb-text-link">Pat Cummins</a></div><div class="cb-col">18</div><div class="cb-col">4</div><div class="cb-col">50</div><div class="cb-col">2</div><div class="cb-col">2.77</div></div>
</div>
</body></html>`

const scorecardHTML = `<html><body>
<div class="cb-col cb-col-100 cb-ltst-wgt-hdr">
  <div class="cb-col cb-col-100 cb-scrd-itms">
    <div class="cb-col cb-col-25"><a class="cb-text-link">Rohit Sharma</a></div>
    <div class="cb-col cb-col-33"><span>c Smith b Cummins</span></div>
    <div class="cb-col cb-col-8 text-right text-bold">52</div>
    <div class="cb-col cb-col-8 text-right">80</div>
    <div class="cb-col cb-col-8 text-right">6</div>
    <div class="cb-col cb-col-8 text-right">1</div>
    <div class="cb-col cb-col-8 text-right">65.00</div>
  </div>
  <div class="cb-col cb-col-100 cb-scrd-itms">
    <div class="cb-col cb-col-25"><a class="cb-text-link">Shubman Gill</a></div>
    <div class="cb-col cb-col-33"><span>not out</span></div>
    <div class="cb-col cb-col-8 text-right text-bold">101</div>
    <div class="cb-col cb-col-8 text-right">150</div>
    <div class="cb-col cb-col-8 text-right">12</div>
    <div class="cb-col cb-col-8 text-right">2</div>
    <div class="cb-col cb-col-8 text-right">67.33</div>
  </div>
  <div class="cb-col cb-col-100 cb-scrd-itms">
    <div class="cb-col cb-col-60">Extras</div>
    <div class="cb-col cb-col-8 text-bold cb-text-black text-right">12</div>
    <div class="cb-col-32 cb-col">(b 4, lb 2, w 6)</div>
  </div>
  <div class="cb-col cb-col-100 cb-scrd-itms">
    <div class="cb-col cb-col-60">Total</div>
    <div class="cb-col cb-col-8 text-bold text-black text-right">310</div>
    <div class="cb-col-32 cb-col">(8 wkts, 90 Ov)</div>
  </div>
  <div class="cb-col cb-col-100 cb-scrd-itms">
    <div class="cb-col cb-col-27">Did not Bat</div>
    <div class="cb-col cb-col-73"> Jadeja , Ashwin, Bumrah </div>
  </div>
  <div class="cb-col cb-col-100 cb-col-rt cb-font-13">
    <span>45/2 (Smith, 23 balls)</span>, <span>98-3 (Labuschagne, 40.1 ov)</span>, <span>no delimiters</span>, <span>7 (no separator)</span>
  </div>
  <div class="cb-col cb-col-100 cb-scrd-hdr-rw"><span>Bowler</span></div>
  <div class="cb-col cb-col-100 cb-scrd-itms">
    <div class="cb-col cb-col-38"><a class="cb-text-link">Pat Cummins</a></div>
    <div class="cb-col cb-col-8 text-right">20</div>
    <div class="cb-col cb-col-8 text-right">4</div>
    <div class="cb-col cb-col-10 text-right">55</div>
    <div class="cb-col cb-col-8 text-right text-bold">3</div>
    <div class="cb-col cb-col-8 text-right">1</div>
    <div class="cb-col cb-col-8 text-right">2</div>
    <div class="cb-col cb-col-10 text-right">2.75</div>
  </div>
  <div class="cb-col cb-col-100 cb-scrd-itms">
    <div class="cb-col cb-col-38"><a class="cb-text-link">Nathan Lyon</a></div>
    <div class="cb-col cb-col-8 text-right">30</div>
    <div class="cb-col cb-col-8 text-right">6</div>
    <div class="cb-col cb-col-10 text-right">88</div>
    <div class="cb-col cb-col-8 text-right text-bold">2</div>
    <div class="cb-col cb-col-8 text-right">0</div>
    <div class="cb-col cb-col-8 text-right">0</div>
    <div class="cb-col cb-col-10 text-right">2.93</div>
  </div>
</div>
<div class="cb-col cb-col-100 cb-mtch-info-itm"><div class="cb-col cb-col-27">Match</div><div class="cb-col cb-col-73">1st Test, Border-Gavaskar Trophy</div></div>
<div class="cb-col cb-col-100 cb-mtch-info-itm"><div class="cb-col cb-col-27">Toss</div><div class="cb-col cb-col-73">India won the toss</div></div>
<div class="cb-col cb-col-100 cb-mtch-info-itm"><div class="cb-col cb-col-27">Venue</div><div class="cb-col cb-col-73">Perth Stadium</div></div>
</body></html>`

const squadsHTML = `<html><body>
<div class="cb-col cb-col-100 cb-play11-tm">
  <div class="cb-col cb-col-100 ng-scope"><a><div class="cb-player-name-left">Virat Kohli</div><div class="text-gray">Batter</div></a></div>
  <div class="cb-col cb-col-100 ng-scope"><a><div class="cb-player-name-right">Harshit Rana</div><div class="text-gray">Bowler</div><span class="cbPlusIco"></span></a></div>
  <div class="cb-col cb-col-100 ng-scope"><div class="text-gray">Playing XI</div></div>
</div>
<div class="cb-col cb-col-100">
  <div class="cb-col cb-play11-lft-col">Bench</div>
  <div class="cb-bench"><div class="cb-player-name-left">Dhruv Jurel</div><div class="text-gray">WK-Batter</div></div>
</div>
<div class="cb-play-staff">
  <div><div class="cb-player-name-left">Gautam Gambhir</div><div class="text-gray">Head Coach</div></div>
  <div><div class="text-gray">Vacant</div></div>
</div>
<div class="cb-col cb-col-100 cb-mat-fct">
  <div class="cb-col cb-col-100"><div class="cb-col cb-col-27 cb-mat-fct-itm">Match:</div><div class="cb-col cb-col-73 cb-mat-fct-itm">1st Test</div></div>
  <div class="cb-col cb-col-100"><div class="cb-col cb-col-27 cb-mat-fct-itm">Venue:</div><div class="cb-col cb-col-73 cb-mat-fct-itm">Perth Stadium</div></div>
  <div class="cb-col cb-col-100"><div class="cb-col cb-col-27 cb-mat-fct-itm">Umpires :</div><div class="cb-col cb-col-73 cb-mat-fct-itm">Kettleborough, Illingworth</div></div>
  <div class="cb-col cb-col-100"><div class="cb-col cb-col-27 cb-mat-fct-itm">Third Umpire:</div><div class="cb-col cb-col-73 cb-mat-fct-itm">Richard Illingworth</div></div>
</div>
</body></html>`
